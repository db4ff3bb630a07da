package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/ashishkumar9589411421-svg/navya-jewels/utils"
	"github.com/google/uuid"
)

// ContactController handles contact enquiry submissions
type ContactController struct {
	Store store.Store
	Email *utils.EmailService
}

// NewContactController creates a new ContactController
func NewContactController(s store.Store, emailService *utils.EmailService) *ContactController {
	return &ContactController{Store: s, Email: emailService}
}

// SubmitContact records a customer enquiry with status "Pending".
func (cc *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	phone := strings.TrimSpace(r.PostFormValue("phone"))
	message := strings.TrimSpace(r.PostFormValue("message"))

	if name == "" || message == "" {
		writeFormError(w, http.StatusBadRequest, "Name and message are required.")
		return
	}
	if email == "" && phone == "" {
		writeFormError(w, http.StatusBadRequest, "Please provide an email or a phone number.")
		return
	}

	contact := models.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Status:    "Pending",
		CreatedAt: time.Now(),
	}

	var contacts []models.Contact
	if err := store.LoadOrEmpty(cc.Store, store.Contacts, &contacts); err != nil {
		http.Error(w, "Error saving enquiry", http.StatusInternalServerError)
		return
	}
	contacts = append(contacts, contact)
	if err := cc.Store.Save(store.Contacts, contacts); err != nil {
		http.Error(w, "Error saving enquiry", http.StatusInternalServerError)
		return
	}

	if contact.Email != "" {
		go func(email, name string) {
			if err := cc.Email.SendContactAcknowledgementEmail(email, name); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(contact.Email, contact.Name)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Thank you for reaching out. We will get back to you shortly.",
	})
}
