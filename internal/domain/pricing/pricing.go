// Package pricing computes proposal totals from a product's base price,
// its selected add-ons and a quantity.
package pricing

import "proposal_catalog/internal/domain/entities"

// ProductLookup resolves a product by id. entities.Catalog satisfies it.
type ProductLookup interface {
	ProductByID(id string) (entities.Product, bool)
}

// Total resolves productID and prices it. An unknown product yields 0.
func Total(products ProductLookup, productID string, quantity int, addOnIDs []string) float64 {
	p, ok := products.ProductByID(productID)
	if !ok {
		return 0
	}
	return ForProduct(p, quantity, addOnIDs)
}

// ForProduct returns (base price + selected add-on prices) * quantity.
//
// The selection is a set: a repeated id is priced once. Ids that do not
// belong to the product contribute nothing. Use UnknownAddOns first when
// such ids must be rejected.
func ForProduct(p entities.Product, quantity int, addOnIDs []string) float64 {
	if quantity <= 0 {
		return 0
	}
	extras := 0.0
	seen := make(map[string]struct{}, len(addOnIDs))
	for _, id := range addOnIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if a, ok := p.AddOnByID(id); ok {
			extras += a.AdditionalPrice
		}
	}
	return (p.BasePrice + extras) * float64(quantity)
}

// UnknownAddOns returns the ids in addOnIDs that are not add-ons of p, in input order.
func UnknownAddOns(p entities.Product, addOnIDs []string) []string {
	var unknown []string
	for _, id := range addOnIDs {
		if _, ok := p.AddOnByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// Products adapts a plain slice to ProductLookup.
type Products []entities.Product

func (ps Products) ProductByID(id string) (entities.Product, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}
