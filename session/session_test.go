package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachCreatesSessionAndSetsCookie(t *testing.T) {
	m := NewManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	sess := m.Attach(rec, req)

	require.NotNil(t, sess)
	require.NotEmpty(t, sess.ID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)
}

func TestAttachReusesSessionFromCookie(t *testing.T) {
	m := NewManager()

	rec := httptest.NewRecorder()
	first := m.Attach(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	first.Cart.Add("G24N001", 2)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: first.ID})
	second := m.Attach(httptest.NewRecorder(), req)

	require.Same(t, first, second)
	assert.Len(t, second.Cart.Items, 1)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager()

	a := m.Attach(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cart", nil))
	b := m.Attach(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cart", nil))

	a.Cart.Add("G24N001", 3)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, b.Cart.Items, "one browser's cart must never leak into another session")
}

func TestAttachWithUnknownCookieCreatesFreshSession(t *testing.T) {
	m := NewManager()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "expired-or-bogus"})
	sess := m.Attach(httptest.NewRecorder(), req)

	require.NotNil(t, sess)
	assert.NotEqual(t, "expired-or-bogus", sess.ID)
}
