package repository

import (
	"context"
	"errors"
	"time"

	"proposal_catalog/internal/domain/entities"

	"gorm.io/gorm"
)

var fixturesCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// FixtureCities is the starter city set used by the fixtures store.
func FixtureCities() []entities.City {
	return []entities.City{
		{ID: "1", Name: "São Paulo", State: "SP", CreatedAt: fixturesCreatedAt},
		{ID: "2", Name: "Rio de Janeiro", State: "RJ", CreatedAt: fixturesCreatedAt},
	}
}

// FixtureProducts is the starter product set, add-ons included.
func FixtureProducts() []entities.Product {
	addOn := func(id, productID, name string, price float64) entities.AddOn {
		return entities.AddOn{ID: id, ProductID: productID, Name: name, AdditionalPrice: price, CreatedAt: fixturesCreatedAt}
	}
	return []entities.Product{
		{
			ID:          "1",
			Name:        "Website Básico",
			BasePrice:   2500,
			Description: "Site institucional com até 5 páginas",
			CreatedAt:   fixturesCreatedAt,
			AddOns: []entities.AddOn{
				addOn("1", "1", "SEO Básico", 500),
				addOn("2", "1", "Blog integrado", 800),
				addOn("3", "1", "Formulário de contato avançado", 300),
			},
		},
		{
			ID:          "2",
			Name:        "E-commerce",
			BasePrice:   5000,
			Description: "Loja virtual completa",
			CreatedAt:   fixturesCreatedAt,
			AddOns: []entities.AddOn{
				addOn("4", "2", "Gateway de pagamento", 1000),
				addOn("5", "2", "Sistema de cupons", 600),
				addOn("6", "2", "Relatórios avançados", 1200),
			},
		},
	}
}

// SeedFixtures inserts every fixture row that is not present yet and returns
// how many rows were written. Running it twice writes nothing the second time.
func SeedFixtures(ctx context.Context, db *gorm.DB) (int, error) {
	written := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range FixtureCities() {
			row := toCityRow(c)
			ok, err := insertIfMissing(tx, &cityRow{}, row.ID, &row)
			if err != nil {
				return err
			}
			if ok {
				written++
			}
		}
		for _, p := range FixtureProducts() {
			row := toProductRow(p)
			addOns := row.AddOns
			row.AddOns = nil
			ok, err := insertIfMissing(tx, &productRow{}, row.ID, &row)
			if err != nil {
				return err
			}
			if ok {
				written++
			}
			for i := range addOns {
				ok, err := insertIfMissing(tx, &addOnRow{}, addOns[i].ID, &addOns[i])
				if err != nil {
					return err
				}
				if ok {
					written++
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func insertIfMissing(tx *gorm.DB, existing interface{}, id string, row interface{}) (bool, error) {
	err := tx.Where("id = ?", id).Take(existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Omit("AddOns", "City").Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
