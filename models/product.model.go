package models

// Product represents one catalog record. The catalog is seeded once and is
// read-only as far as the storefront is concerned.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // smallest currency unit
	Image       string `json:"image"`
	Category    string `json:"category"`
	Metal       string `json:"metal"` // "Gold", "Silver" or "Diamond"
	Carat       int    `json:"carat"`
	Description string `json:"description"`
}

// FindProduct resolves a product id against a loaded catalog.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, product := range products {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

// FilterByMetal returns the products of the given metal in storage order.
// A carat of 0 means no purity filter, otherwise carat must match exactly.
func FilterByMetal(products []Product, metal string, carat int) []Product {
	filtered := []Product{}
	for _, product := range products {
		if product.Metal != metal {
			continue
		}
		if carat != 0 && product.Carat != carat {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}
