package models

// User represents a registered customer. At least one of email or phone must
// be present. Password holds the bcrypt hash; handlers blank it before
// writing a user to a response, and it never enters the session.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"` // "user" or "admin"
}
