package models

import "time"

// Contact represents a customer enquiry submitted through the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "Pending" or "Done"
	CreatedAt time.Time `json:"createdAt"`
}
