// controllers/order.go
package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ashishkumar9589411421-svg/navya-jewels/middleware"
	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/session"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/ashishkumar9589411421-svg/navya-jewels/utils"
	"github.com/google/uuid"
)

// OrderController handles checkout and order-related requests
type OrderController struct {
	Store    store.Store
	Sessions *session.Manager
	Email    *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(s store.Store, sessions *session.Manager, emailService *utils.EmailService) *OrderController {
	return &OrderController{Store: s, Sessions: sessions, Email: emailService}
}

// Checkout renders the data for the order form: the same priced line items
// the cart view shows. An empty cart bounces back to /cart.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	if _, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess := oc.Sessions.Attach(w, r)
	if len(sess.Cart.Items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	var products []models.Product
	if err := store.LoadOrEmpty(oc.Store, store.Products, &products); err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	lineItems, total := models.Materialize(sess.Cart.Items, products)
	renderCheckout(w, http.StatusOK, lineItems, total, "")
}

// PlaceOrder turns the session cart into a persisted order. Every shipping
// field must be present; a failed validation re-renders the checkout data
// with a message and leaves the cart and the order collection untouched.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sess := oc.Sessions.Attach(w, r)
	if len(sess.Cart.Items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var products []models.Product
	if err := store.LoadOrEmpty(oc.Store, store.Products, &products); err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	lineItems, total := models.Materialize(sess.Cart.Items, products)

	fields := []struct {
		value string
		label string
	}{
		{strings.TrimSpace(r.PostFormValue("name")), "name"},
		{strings.TrimSpace(r.PostFormValue("phone")), "phone number"},
		{strings.TrimSpace(r.PostFormValue("address")), "address"},
		{strings.TrimSpace(r.PostFormValue("city")), "city"},
		{strings.TrimSpace(r.PostFormValue("pincode")), "pincode"},
		{strings.TrimSpace(r.PostFormValue("paymentMethod")), "payment method"},
	}
	for _, field := range fields {
		if field.value == "" {
			renderCheckout(w, http.StatusUnprocessableEntity, lineItems, total,
				"Please provide your "+field.label+".")
			return
		}
	}

	order := models.Order{
		ID:            uuid.NewString(),
		UserID:        claims.UserID,
		CustomerName:  fields[0].value,
		Phone:         fields[1].value,
		Address:       fields[2].value,
		City:          fields[3].value,
		Pincode:       fields[4].value,
		PaymentMethod: fields[5].value,
		Items:         models.Snapshot(lineItems),
		Total:         total,
		Status:        "Pending",
		CreatedAt:     time.Now(),
	}

	var orders []models.Order
	if err := store.LoadOrEmpty(oc.Store, store.Orders, &orders); err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}
	orders = append(orders, order)
	if err := oc.Store.Save(store.Orders, orders); err != nil {
		// The cart stays intact so the customer can retry.
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	sess.Cart.Clear()

	if claims.Email != "" {
		go func(email string, order models.Order) {
			if err := oc.Email.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(claims.Email, order)
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// GetOrders retrieves the authenticated user's orders in creation order
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var orders []models.Order
	if err := store.LoadOrEmpty(oc.Store, store.Orders, &orders); err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	mine := []models.Order{}
	for _, order := range orders {
		if order.UserID == claims.UserID {
			mine = append(mine, order)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mine)
}

// renderCheckout writes the checkout view payload. Validation failures carry
// the same line items and total the form was rendered with, plus a message.
func renderCheckout(w http.ResponseWriter, status int, lineItems []models.LineItem, total int, message string) {
	payload := map[string]interface{}{
		"items": lineItems,
		"total": total,
	}
	if message != "" {
		payload["error"] = message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
