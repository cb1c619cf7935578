package interfaces

import (
	"context"
	"proposal_catalog/internal/domain/entities"
)

// IProposalRepository abstracts persistence for proposals (SQL or DynamoDB).
//
// List must return proposals in insertion order: the filtering engine keeps
// whatever order it receives.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
