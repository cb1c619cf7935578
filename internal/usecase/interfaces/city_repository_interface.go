package interfaces

import (
	"context"
	"proposal_catalog/internal/domain/entities"
)

// ICityRepository abstracts persistence for the cities table.

type ICityRepository interface {
	Create(ctx context.Context, c entities.City) (entities.City, error)
	GetByID(ctx context.Context, id string) (entities.City, error)
	List(ctx context.Context) ([]entities.City, error)
}
