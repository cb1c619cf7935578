package repository

import (
	"strings"
	"time"

	"proposal_catalog/internal/domain/entities"
)

// Row types mirror the hosted store schema: cities, clients, products and
// add_ons. proposals only exists when PROPOSAL_STORE=sql.

type cityRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null;index"`
	State     string    `gorm:"size:2;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (cityRow) TableName() string { return "cities" }

type clientRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null;index"`
	Email     string    `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	Address   string    `gorm:"not null;default:''"`
	CityID    *string   `gorm:"size:36;index"`
	City      *cityRow  `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time `gorm:"not null"`
}

func (clientRow) TableName() string { return "clients" }

type productRow struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Name        string     `gorm:"not null;index"`
	BasePrice   float64    `gorm:"not null;check:base_price >= 0"`
	Description string     `gorm:"not null;default:''"`
	AddOns      []addOnRow `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `gorm:"not null"`
}

func (productRow) TableName() string { return "products" }

type addOnRow struct {
	ID              string    `gorm:"primaryKey;size:36"`
	ProductID       string    `gorm:"size:36;not null;index"`
	Name            string    `gorm:"not null"`
	AdditionalPrice float64   `gorm:"not null;check:additional_price >= 0"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (addOnRow) TableName() string { return "add_ons" }

type proposalRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	ClientID  string `gorm:"size:36;not null;index"`
	ProductID string `gorm:"size:36;not null;index"`
	Quantity  int    `gorm:"not null"`
	StartDate string `gorm:"size:10;not null;index"`
	// Comma-separated add-on ids; ids are uuids or short numeric fixture ids.
	SelectedAddOnIDs string    `gorm:"not null;default:''"`
	Total            float64   `gorm:"not null"`
	Status           string    `gorm:"size:16;not null"`
	Notes            string    `gorm:"not null;default:''"`
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (proposalRow) TableName() string { return "proposals" }

// Models lists every row type for AutoMigrate.
func Models() []interface{} {
	return append(CatalogModels(), ProposalModel())
}

// CatalogModels lists the row types of the hosted catalog tables, parents first.
func CatalogModels() []interface{} {
	return []interface{}{&cityRow{}, &clientRow{}, &productRow{}, &addOnRow{}}
}

// ProposalModel is the row type of the proposals table.
func ProposalModel() interface{} {
	return &proposalRow{}
}

func toCityRow(c entities.City) cityRow {
	return cityRow{ID: c.ID, Name: c.Name, State: c.State, CreatedAt: c.CreatedAt.UTC()}
}

func fromCityRow(r cityRow) entities.City {
	return entities.City{ID: r.ID, Name: r.Name, State: r.State, CreatedAt: r.CreatedAt.UTC()}
}

func toClientRow(c entities.Client) clientRow {
	return clientRow{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CityID:    c.CityID,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func fromClientRow(r clientRow) entities.Client {
	return entities.Client{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		CityID:    r.CityID,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toProductRow(p entities.Product) productRow {
	row := productRow{
		ID:          p.ID,
		Name:        p.Name,
		BasePrice:   p.BasePrice,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC(),
	}
	for _, a := range p.AddOns {
		row.AddOns = append(row.AddOns, toAddOnRow(a))
	}
	return row
}

func fromProductRow(r productRow) entities.Product {
	p := entities.Product{
		ID:          r.ID,
		Name:        r.Name,
		BasePrice:   r.BasePrice,
		Description: r.Description,
		AddOns:      make([]entities.AddOn, 0, len(r.AddOns)),
		CreatedAt:   r.CreatedAt.UTC(),
	}
	for _, a := range r.AddOns {
		p.AddOns = append(p.AddOns, fromAddOnRow(a))
	}
	return p
}

func toAddOnRow(a entities.AddOn) addOnRow {
	return addOnRow{
		ID:              a.ID,
		ProductID:       a.ProductID,
		Name:            a.Name,
		AdditionalPrice: a.AdditionalPrice,
		CreatedAt:       a.CreatedAt.UTC(),
	}
}

func fromAddOnRow(r addOnRow) entities.AddOn {
	return entities.AddOn{
		ID:              r.ID,
		ProductID:       r.ProductID,
		Name:            r.Name,
		AdditionalPrice: r.AdditionalPrice,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

func toProposalRow(p entities.Proposal) proposalRow {
	return proposalRow{
		ID:               p.ID,
		ClientID:         p.ClientID,
		ProductID:        p.ProductID,
		Quantity:         p.Quantity,
		StartDate:        p.StartDate,
		SelectedAddOnIDs: strings.Join(p.SelectedAddOnIDs, ","),
		Total:            p.Total,
		Status:           string(p.Status),
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt.UTC(),
		UpdatedAt:        p.UpdatedAt.UTC(),
	}
}

func fromProposalRow(r proposalRow) entities.Proposal {
	ids := []string{}
	if r.SelectedAddOnIDs != "" {
		ids = strings.Split(r.SelectedAddOnIDs, ",")
	}
	return entities.Proposal{
		ID:               r.ID,
		ClientID:         r.ClientID,
		ProductID:        r.ProductID,
		Quantity:         r.Quantity,
		StartDate:        r.StartDate,
		SelectedAddOnIDs: ids,
		Total:            r.Total,
		Status:           entities.ProposalStatus(r.Status),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}
