package interfaces

import (
	"context"
	"proposal_catalog/internal/domain/entities"
)

// IClientRepository abstracts persistence for the clients table.
//
// Lists are ordered by client name.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	ListByCityID(ctx context.Context, cityID string) ([]entities.Client, error)
}
