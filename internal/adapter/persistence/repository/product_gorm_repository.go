package repository

import (
	"context"
	"errors"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProductGormRepository persists products and their add-ons.
//
// A product and the add-ons sent with it are written in one transaction.
type ProductGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProductRepository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	row := toProductRow(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("AddOns").Create(&row).Error; err != nil {
			return err
		}
		if len(row.AddOns) == 0 {
			return nil
		}
		return tx.Create(&row.AddOns).Error
	})
	if err != nil {
		return entities.Product{}, err
	}
	return fromProductRow(row), nil
}

func (r *ProductGormRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var row productRow
	err := r.withAddOns(r.db.WithContext(ctx)).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}
	return fromProductRow(row), nil
}

func (r *ProductGormRepository) List(ctx context.Context) ([]entities.Product, error) {
	var rows []productRow
	if err := r.withAddOns(r.db.WithContext(ctx)).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromProductRow(row))
	}
	return out, nil
}

func (r *ProductGormRepository) CreateAddOn(ctx context.Context, a entities.AddOn) (entities.AddOn, error) {
	row := toAddOnRow(a)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.AddOn{}, err
	}
	return fromAddOnRow(row), nil
}

func (r *ProductGormRepository) withAddOns(q *gorm.DB) *gorm.DB {
	return q.Preload("AddOns", func(db *gorm.DB) *gorm.DB {
		return db.Order("name, id")
	})
}
