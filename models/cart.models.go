package models

import "strconv"

// CartItem represents an item in the cart. The product reference is not
// enforced against the catalog; a stale id is dropped when the cart is
// priced, never treated as an error.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart represents a shopping cart. It lives in session state, one per
// browser, and is empty by default.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges a product into the cart. An existing entry has the quantity
// added to it; otherwise a new entry is appended at the end.
func (c *Cart) Add(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// Remove deletes the entry for the product. Removing an id that is not in
// the cart is a no-op.
func (c *Cart) Remove(productID string) {
	updated := []CartItem{}
	for _, item := range c.Items {
		if item.ProductID != productID {
			updated = append(updated, item)
		}
	}
	c.Items = updated
}

// UpdateQuantities sets new quantities for the entries whose id appears in
// the map. A value below 1 clamps to 1. Ids that are not already in the
// cart are ignored; entries missing from the map keep their quantity.
func (c *Cart) UpdateQuantities(quantities map[string]int) {
	for i, item := range c.Items {
		quantity, ok := quantities[item.ProductID]
		if !ok {
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		c.Items[i].Quantity = quantity
	}
}

// Clear empties the cart. Called as the final step of order placement.
func (c *Cart) Clear() {
	c.Items = nil
}

// ParseQuantity reads a submitted quantity field. Non-numeric or
// non-positive input falls back to 1, never to zero or an error.
func ParseQuantity(raw string) int {
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity < 1 {
		return 1
	}
	return quantity
}
