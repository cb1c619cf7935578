package entities

// Catalog is a whole-collection snapshot of the reference data.
type Catalog struct {
	Cities   []City    `json:"cities"`
	Clients  []Client  `json:"clients"`
	Products []Product `json:"products"`
}

func (c Catalog) CityByID(id string) (City, bool) {
	for _, city := range c.Cities {
		if city.ID == id {
			return city, true
		}
	}
	return City{}, false
}

func (c Catalog) ClientByID(id string) (Client, bool) {
	for _, client := range c.Clients {
		if client.ID == id {
			return client, true
		}
	}
	return Client{}, false
}

func (c Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ClientsInCity keeps the snapshot order.
func (c Catalog) ClientsInCity(cityID string) []Client {
	out := make([]Client, 0)
	for _, client := range c.Clients {
		if client.InCity(cityID) {
			out = append(out, client)
		}
	}
	return out
}

// ClientCountByCity counts linked clients per city id. Unlinked clients are skipped.
func (c Catalog) ClientCountByCity() map[string]int {
	counts := make(map[string]int, len(c.Cities))
	for _, client := range c.Clients {
		if client.CityID != nil {
			counts[*client.CityID]++
		}
	}
	return counts
}
