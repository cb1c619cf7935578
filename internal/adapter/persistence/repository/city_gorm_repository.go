package repository

import (
	"context"
	"errors"

	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CityGormRepository persists cities in the relational store.
type CityGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICityRepository = (*CityGormRepository)(nil)

func NewCityGormRepository(db *gorm.DB) *CityGormRepository {
	return &CityGormRepository{db: db}
}

func (r *CityGormRepository) Create(ctx context.Context, c entities.City) (entities.City, error) {
	row := toCityRow(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.City{}, err
	}
	return fromCityRow(row), nil
}

func (r *CityGormRepository) GetByID(ctx context.Context, id string) (entities.City, error) {
	var row cityRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.City{}, nil
	}
	if err != nil {
		return entities.City{}, err
	}
	return fromCityRow(row), nil
}

func (r *CityGormRepository) List(ctx context.Context) ([]entities.City, error) {
	var rows []cityRow
	if err := r.db.WithContext(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.City, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCityRow(row))
	}
	return out, nil
}
