// controllers/admin.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/gorilla/mux"
)

// AdminController backs the admin dashboard: listing users, advancing order
// and enquiry statuses, and pruning records. Route-level middleware already
// guarantees an admin identity.
type AdminController struct {
	Store store.Store
}

// NewAdminController creates a new AdminController
func NewAdminController(s store.Store) *AdminController {
	return &AdminController{Store: s}
}

// ListUsers returns every account without password hashes.
func (ac *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := store.LoadOrEmpty(ac.Store, store.Users, &users); err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	for i := range users {
		users[i].Password = ""
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// ListOrders returns all orders across all users.
func (ac *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	var orders []models.Order
	if err := store.LoadOrEmpty(ac.Store, store.Orders, &orders); err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus sets an order's status to Pending, Confirmed or
// Delivered. There is no transition logic; the dashboard writes what it
// wants.
func (ac *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var statusUpdate struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusUpdate); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	switch statusUpdate.Status {
	case "Pending", "Confirmed", "Delivered":
	default:
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	var orders []models.Order
	if err := store.LoadOrEmpty(ac.Store, store.Orders, &orders); err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = statusUpdate.Status
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := ac.Store.Save(store.Orders, orders); err != nil {
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated successfully"})
}

// DeleteOrder removes an order from the collection.
func (ac *AdminController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var orders []models.Order
	if err := store.LoadOrEmpty(ac.Store, store.Orders, &orders); err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	remaining := []models.Order{}
	found := false
	for _, order := range orders {
		if order.ID == orderID {
			found = true
			continue
		}
		remaining = append(remaining, order)
	}
	if !found {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if err := ac.Store.Save(store.Orders, remaining); err != nil {
		http.Error(w, "Failed to delete order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order removed"})
}

// ListContacts returns every enquiry.
func (ac *AdminController) ListContacts(w http.ResponseWriter, r *http.Request) {
	var contacts []models.Contact
	if err := store.LoadOrEmpty(ac.Store, store.Contacts, &contacts); err != nil {
		http.Error(w, "Failed to retrieve enquiries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contacts)
}

// UpdateContactStatus marks an enquiry Pending or Done.
func (ac *AdminController) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	var statusUpdate struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusUpdate); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if statusUpdate.Status != "Pending" && statusUpdate.Status != "Done" {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	var contacts []models.Contact
	if err := store.LoadOrEmpty(ac.Store, store.Contacts, &contacts); err != nil {
		http.Error(w, "Failed to retrieve enquiries", http.StatusInternalServerError)
		return
	}

	found := false
	for i := range contacts {
		if contacts[i].ID == contactID {
			contacts[i].Status = statusUpdate.Status
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "Enquiry not found", http.StatusNotFound)
		return
	}

	if err := ac.Store.Save(store.Contacts, contacts); err != nil {
		http.Error(w, "Failed to update enquiry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Enquiry status updated successfully"})
}

// DeleteContact removes an enquiry from the collection.
func (ac *AdminController) DeleteContact(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	var contacts []models.Contact
	if err := store.LoadOrEmpty(ac.Store, store.Contacts, &contacts); err != nil {
		http.Error(w, "Failed to retrieve enquiries", http.StatusInternalServerError)
		return
	}

	remaining := []models.Contact{}
	found := false
	for _, contact := range contacts {
		if contact.ID == contactID {
			found = true
			continue
		}
		remaining = append(remaining, contact)
	}
	if !found {
		http.Error(w, "Enquiry not found", http.StatusNotFound)
		return
	}

	if err := ac.Store.Save(store.Contacts, remaining); err != nil {
		http.Error(w, "Failed to delete enquiry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Enquiry removed"})
}
