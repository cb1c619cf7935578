package interfaces

import (
	"context"
	"proposal_catalog/internal/domain/entities"
)

// IProductRepository abstracts persistence for the products and add_ons tables.
//
// Products are always returned with their add-ons loaded.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	CreateAddOn(ctx context.Context, a entities.AddOn) (entities.AddOn, error)
}
