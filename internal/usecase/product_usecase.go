package usecase

import (
	"context"
	"errors"
	"log"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/pricing"
	"proposal_catalog/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidBasePrice    = errors.New("invalid base price")
	ErrInvalidAddOnName    = errors.New("invalid add-on name")
	ErrInvalidAddOnPrice   = errors.New("invalid add-on price")
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)

type AddOnInput struct {
	Name            string
	AdditionalPrice float64
}

type ProductInput struct {
	Name        string
	BasePrice   float64
	Description string
	AddOns      []AddOnInput
}

// IProductUseCase exposes product catalog operations and the live price quote.

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	AddAddOn(ctx context.Context, productID string, in AddOnInput) (entities.AddOn, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Quote(ctx context.Context, productID string, quantity int, addOnIDs []string) (float64, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if in.BasePrice < 0 {
		return entities.Product{}, ErrInvalidBasePrice
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:          uuid.NewString(),
		Name:        name,
		BasePrice:   in.BasePrice,
		Description: strings.TrimSpace(in.Description),
		AddOns:      make([]entities.AddOn, 0, len(in.AddOns)),
		CreatedAt:   now,
	}
	for _, a := range in.AddOns {
		addOn, err := newAddOn(p.ID, a, now)
		if err != nil {
			return entities.Product{}, err
		}
		p.AddOns = append(p.AddOns, addOn)
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[product][usecase] create failed name=%q add_ons=%d err=%v", name, len(p.AddOns), err)
		return entities.Product{}, err
	}
	return created, nil
}

func (u *ProductUseCase) AddAddOn(ctx context.Context, productID string, in AddOnInput) (entities.AddOn, error) {
	p, err := u.GetByID(ctx, productID)
	if err != nil {
		return entities.AddOn{}, err
	}
	a, err := newAddOn(p.ID, in, time.Now().UTC())
	if err != nil {
		return entities.AddOn{}, err
	}

	created, err := u.repo.CreateAddOn(ctx, a)
	if err != nil {
		log.Printf("[product][usecase] add-on create failed product_id=%s err=%v", p.ID, err)
		return entities.AddOn{}, err
	}
	return created, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// Quote prices a product selection the way the proposal form shows it live.
// It is lenient: an unknown product quotes 0 and foreign add-on ids are ignored.
func (u *ProductUseCase) Quote(ctx context.Context, productID string, quantity int, addOnIDs []string) (float64, error) {
	if quantity < 0 {
		return 0, ErrInvalidQuoteRequest
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return 0, nil
	}

	p, err := u.repo.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if p.ID == "" {
		return 0, nil
	}
	return pricing.ForProduct(p, quantity, addOnIDs), nil
}

func newAddOn(productID string, in AddOnInput, now time.Time) (entities.AddOn, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.AddOn{}, ErrInvalidAddOnName
	}
	if in.AdditionalPrice < 0 {
		return entities.AddOn{}, ErrInvalidAddOnPrice
	}
	return entities.AddOn{
		ID:              uuid.NewString(),
		ProductID:       productID,
		Name:            name,
		AdditionalPrice: in.AdditionalPrice,
		CreatedAt:       now,
	}, nil
}
