package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/session"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Store    store.Store
	Sessions *session.Manager
}

// NewCartController creates a new CartController
func NewCartController(s store.Store, sessions *session.Manager) *CartController {
	return &CartController{Store: s, Sessions: sessions}
}

// GetCart renders the priced cart: line items joined against the current
// catalog plus the grand total. Entries whose product has gone missing are
// dropped silently.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sess := cc.Sessions.Attach(w, r)

	var products []models.Product
	if err := store.LoadOrEmpty(cc.Store, store.Products, &products); err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	lineItems, total := models.Materialize(sess.Cart.Items, products)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items": lineItems,
		"total": total,
	})
}

// AddToCart merges a product into the session cart. The quantity field is
// optional and defaults to 1, also when it fails to parse.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess := cc.Sessions.Attach(w, r)
	params := mux.Vars(r)

	quantity := models.ParseQuantity(r.FormValue("quantity"))
	sess.Cart.Add(params["id"], quantity)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveFromCart deletes a product from the session cart. Removing an id
// that is not in the cart succeeds without complaint.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := cc.Sessions.Attach(w, r)
	params := mux.Vars(r)

	sess.Cart.Remove(params["id"])

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// UpdateCart applies the quantity[<productId>] fields submitted by the cart
// form. Ids not in the cart are ignored, bad values clamp to 1.
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sess := cc.Sessions.Attach(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	quantities := map[string]int{}
	for key, values := range r.PostForm {
		if !strings.HasPrefix(key, "quantity[") || !strings.HasSuffix(key, "]") {
			continue
		}
		productID := key[len("quantity[") : len(key)-1]
		if productID == "" || len(values) == 0 {
			continue
		}
		quantities[productID] = models.ParseQuantity(values[0])
	}

	sess.Cart.UpdateQuantities(quantities)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
