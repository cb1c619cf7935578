package usecase

import (
	"context"
	"errors"
	"log"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var (
	ErrCityNotFound     = errors.New("city not found")
	ErrInvalidCityID    = errors.New("invalid city id")
	ErrInvalidCityName  = errors.New("invalid city name")
	ErrInvalidCityState = errors.New("invalid city state")
)

type ICityUseCase interface {
	Create(ctx context.Context, name, state string) (entities.City, error)
	GetByID(ctx context.Context, id string) (entities.City, error)
	List(ctx context.Context) ([]entities.City, error)
}

type CityUseCase struct {
	repo interfaces.ICityRepository
}

var _ ICityUseCase = (*CityUseCase)(nil)

func NewCityUseCase(repo interfaces.ICityRepository) *CityUseCase {
	return &CityUseCase{repo: repo}
}

func (u *CityUseCase) Create(ctx context.Context, name, state string) (entities.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.City{}, ErrInvalidCityName
	}
	state, ok := normalizeState(state)
	if !ok {
		return entities.City{}, ErrInvalidCityState
	}

	c := entities.City{
		ID:        uuid.NewString(),
		Name:      name,
		State:     state,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[city][usecase] create failed name=%q err=%v", name, err)
		return entities.City{}, err
	}
	return created, nil
}

func (u *CityUseCase) GetByID(ctx context.Context, id string) (entities.City, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.City{}, ErrInvalidCityID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.City{}, err
	}
	if c.ID == "" {
		return entities.City{}, ErrCityNotFound
	}
	return c, nil
}

func (u *CityUseCase) List(ctx context.Context) ([]entities.City, error) {
	return u.repo.List(ctx)
}

// normalizeState upper-cases a region code and checks it is exactly two letters.
func normalizeState(state string) (string, bool) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if len(state) != 2 {
		return "", false
	}
	for _, r := range state {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return "", false
		}
	}
	return state, true
}
