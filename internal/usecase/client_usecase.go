package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidClientEmail = errors.New("invalid client email")
	ErrInvalidClientPhone = errors.New("invalid client phone")
	ErrCityRequired       = errors.New("city is required")
)

// ClientInput is the create-client command. CityID is mandatory: a client is
// always registered from a selected city.
type ClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	CityID  string
}

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context, cityID *string) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo     interfaces.IClientRepository
	cityRepo interfaces.ICityRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, cityRepo interfaces.ICityRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, cityRepo: cityRepo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return entities.Client{}, ErrInvalidClientEmail
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return entities.Client{}, ErrInvalidClientPhone
	}
	cityID := strings.TrimSpace(in.CityID)
	if cityID == "" {
		return entities.Client{}, ErrCityRequired
	}

	city, err := u.cityRepo.GetByID(ctx, cityID)
	if err != nil {
		return entities.Client{}, err
	}
	if city.ID == "" {
		return entities.Client{}, ErrCityNotFound
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   strings.TrimSpace(in.Address),
		CityID:    &city.ID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed city_id=%s err=%v", cityID, err)
		return entities.Client{}, err
	}
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

// List returns every client, or only the clients of cityID when it is set.
func (u *ClientUseCase) List(ctx context.Context, cityID *string) ([]entities.Client, error) {
	if cityID == nil {
		return u.repo.List(ctx)
	}
	id := strings.TrimSpace(*cityID)
	if id == "" {
		return nil, ErrInvalidCityID
	}
	return u.repo.ListByCityID(ctx, id)
}
