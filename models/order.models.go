package models

import "time"

// LineItem joins a cart entry with its live catalog record. Computed fresh
// on every read and never cached.
type LineItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal int     `json:"lineTotal"`
}

// OrderItem is the frozen form of a line item, captured at order time and
// independent of later catalog changes.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"` // price at the time of order
	Quantity  int    `json:"quantity"`
}

// Order represents a placed order. Immutable once written except for the
// status field, which the admin dashboard advances.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	Pincode       string      `json:"pincode"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
	Total         int         `json:"total"`
	Status        string      `json:"status"` // "Pending", "Confirmed", "Delivered"
	CreatedAt     time.Time   `json:"createdAt"`
}

// Materialize prices a cart against the catalog. Entries whose product no
// longer exists are dropped, not reported. The cart view, the checkout view
// and order placement all price through this one function so the displayed
// total always matches the committed one.
func Materialize(items []CartItem, products []Product) ([]LineItem, int) {
	lineItems := []LineItem{}
	total := 0
	for _, item := range items {
		product, ok := FindProduct(products, item.ProductID)
		if !ok {
			continue
		}
		lineTotal := product.Price * item.Quantity
		lineItems = append(lineItems, LineItem{
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return lineItems, total
}

// Snapshot freezes line items into their order form, detached from the
// catalog records they were priced from.
func Snapshot(lineItems []LineItem) []OrderItem {
	items := make([]OrderItem, 0, len(lineItems))
	for _, lineItem := range lineItems {
		items = append(items, OrderItem{
			ProductID: lineItem.Product.ID,
			Name:      lineItem.Product.Name,
			Price:     lineItem.Product.Price,
			Quantity:  lineItem.Quantity,
		})
	}
	return items
}
