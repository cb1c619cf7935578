package repository

import (
	"context"
	"errors"
	"time"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProposalGormRepository keeps proposals next to the catalog tables.
type ProposalGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProposalRepository = (*ProposalGormRepository)(nil)

func NewProposalGormRepository(db *gorm.DB) *ProposalGormRepository {
	return &ProposalGormRepository{db: db}
}

func (r *ProposalGormRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	row := toProposalRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRow(row), nil
}

func (r *ProposalGormRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var row proposalRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Proposal{}, nil
	}
	if err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRow(row), nil
}

// List returns proposals in insertion order.
func (r *ProposalGormRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	var rows []proposalRow
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromProposalRow(row))
	}
	return out, nil
}

func (r *ProposalGormRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	res := r.db.WithContext(ctx).Model(&proposalRow{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Proposal{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Proposal{}, nil
	}
	return r.GetByID(ctx, id)
}
