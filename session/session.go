// Package session keeps per-browser server-side state: the shopping cart.
// Sessions are keyed by a cookie; carts never touch the persisted
// collections, so two browsers can never contend over one cart.
package session

import (
	"net/http"
	"sync"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on first contact.
const CookieName = "nj_session"

// Session is the state for one browser.
type Session struct {
	ID   string
	Cart models.Cart
}

// Manager hands out sessions keyed by the browser cookie.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Attach returns the session for the request, creating one and setting the
// cookie when the browser does not have one yet.
func (m *Manager) Attach(w http.ResponseWriter, r *http.Request) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cookie, err := r.Cookie(CookieName); err == nil {
		if sess, ok := m.sessions[cookie.Value]; ok {
			return sess
		}
	}

	sess := &Session{ID: uuid.NewString()}
	m.sessions[sess.ID] = sess
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
	})
	return sess
}
