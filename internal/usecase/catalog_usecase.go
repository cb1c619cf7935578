package usecase

import (
	"context"
	"errors"
	"log"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ErrCatalogUnavailable is the only error Load returns. Which fetch failed is
// logged, not reported.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

type ICatalogUseCase interface {
	Load(ctx context.Context) (entities.Catalog, error)
}

type CatalogUseCase struct {
	cities   interfaces.ICityRepository
	clients  interfaces.IClientRepository
	products interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(cities interfaces.ICityRepository, clients interfaces.IClientRepository, products interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{cities: cities, clients: clients, products: products}
}

// Load fetches cities, clients and products concurrently and waits for all three.
func (u *CatalogUseCase) Load(ctx context.Context) (entities.Catalog, error) {
	var c entities.Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c.Cities, err = u.cities.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Clients, err = u.clients.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Products, err = u.products.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("[catalog][usecase] load failed err=%v", err)
		return entities.Catalog{}, ErrCatalogUnavailable
	}
	log.Printf("[catalog][usecase] loaded cities=%d clients=%d products=%d", len(c.Cities), len(c.Clients), len(c.Products))
	return c, nil
}
