package repository

import (
	"context"
	"testing"

	"proposal_catalog/internal/domain/pricing"
)

func TestSeedFixtures_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	n, err := SeedFixtures(ctx, db)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 10 {
		t.Fatalf("expected 10 rows written, got %d", n)
	}

	n, err = SeedFixtures(ctx, db)
	if err != nil || n != 0 {
		t.Fatalf("expected second seed to write nothing, got %d %v", n, err)
	}

	cities, err := NewCityGormRepository(db).List(ctx)
	if err != nil || len(cities) != 2 {
		t.Fatalf("expected 2 cities, got %d %v", len(cities), err)
	}

	products, err := NewProductGormRepository(db).List(ctx)
	if err != nil || len(products) != 2 {
		t.Fatalf("expected 2 products, got %d %v", len(products), err)
	}
	for _, p := range products {
		if len(p.AddOns) != 3 {
			t.Fatalf("product %s: expected 3 add-ons, got %d", p.Name, len(p.AddOns))
		}
	}

	if got := pricing.Total(pricing.Products(products), "1", 2, []string{"1", "3"}); got != 6600 {
		t.Fatalf("expected 6600, got %v", got)
	}
}
