package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ashishkumar9589411421-svg/navya-jewels/middleware"
	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/ashishkumar9589411421-svg/navya-jewels/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests
type UserController struct {
	Store store.Store
}

// NewUserController creates a new UserController
func NewUserController(s store.Store) *UserController {
	return &UserController{Store: s}
}

// Register handles user registration and signs the new customer straight in.
// An account needs a name, a password and at least one of email or phone.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	phone := strings.TrimSpace(r.PostFormValue("phone"))
	password := r.PostFormValue("password")

	if name == "" || password == "" {
		writeFormError(w, http.StatusBadRequest, "Name and password are required.")
		return
	}
	if email == "" && phone == "" {
		writeFormError(w, http.StatusBadRequest, "Please provide an email or a phone number.")
		return
	}

	var users []models.User
	if err := store.LoadOrEmpty(uc.Store, store.Users, &users); err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	// Check if user already exists
	for _, existing := range users {
		if (email != "" && existing.Email == email) || (phone != "" && existing.Phone == phone) {
			writeFormError(w, http.StatusBadRequest, "User already exists.")
			return
		}
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hashedPassword),
		Role:     "user", // Default role
	}

	users = append(users, user)
	if err := uc.Store.Save(store.Users, users); err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// LoginForm is the login entry point anonymous callers get redirected to.
func (uc *UserController) LoginForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Please log in to continue.",
	})
}

// Login handles user authentication. The identifier matches either the
// account email or phone. Bad credentials come back as a form-level message,
// never as a redirect.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	identifier := strings.TrimSpace(r.PostFormValue("identifier"))
	if identifier == "" {
		identifier = strings.TrimSpace(r.PostFormValue("email"))
	}
	password := r.PostFormValue("password")

	var users []models.User
	if err := store.LoadOrEmpty(uc.Store, store.Users, &users); err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	var user models.User
	found := false
	for _, candidate := range users {
		if identifier != "" && (candidate.Email == identifier || candidate.Phone == identifier) {
			user = candidate
			found = true
			break
		}
	}
	if !found {
		writeFormError(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	// Compare the hashed password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		writeFormError(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Logout drops the auth cookie, returning the browser to anonymous.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var users []models.User
	if err := store.LoadOrEmpty(uc.Store, store.Users, &users); err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	for _, user := range users {
		if user.ID == claims.UserID {
			// Never return the password hash
			user.Password = ""
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(user)
			return
		}
	}

	http.Error(w, "User not found", http.StatusNotFound)
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// writeFormError answers a failed form submission with an inline message.
func writeFormError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
