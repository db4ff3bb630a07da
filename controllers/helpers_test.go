package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ashishkumar9589411421-svg/navya-jewels/middleware"
	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/session"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/ashishkumar9589411421-svg/navya-jewels/utils"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, ms *store.MemStore) {
	t.Helper()
	require.NoError(t, ms.Save(store.Products, []models.Product{
		{ID: "G24N001", Name: "24K Gold Classic Necklace", Price: 54999, Metal: "Gold", Carat: 24},
		{ID: "S92B003", Name: "Silver Oxidised Bangle Pair", Price: 3499, Metal: "Silver", Carat: 92},
	}))
}

// newSession hands back a session the way a first request would create one.
func newSession(m *session.Manager) *session.Session {
	return m.Attach(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func withSession(req *http.Request, sess *session.Session) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	return req
}

func withClaims(req *http.Request, claims *utils.Claims) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	return req.WithContext(ctx)
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
