package repository

import (
	"context"
	"errors"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ClientGormRepository persists clients in the relational store.
type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	row := toClientRow(c)
	if err := r.db.WithContext(ctx).Omit("City").Create(&row).Error; err != nil {
		return entities.Client{}, err
	}
	return fromClientRow(row), nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var row clientRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientRow(row), nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]entities.Client, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *ClientGormRepository) ListByCityID(ctx context.Context, cityID string) ([]entities.Client, error) {
	return r.find(r.db.WithContext(ctx).Where("city_id = ?", cityID))
}

func (r *ClientGormRepository) find(q *gorm.DB) ([]entities.Client, error) {
	var rows []clientRow
	if err := q.Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromClientRow(row))
	}
	return out, nil
}
