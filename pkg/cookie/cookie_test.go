package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/cookie"
)

func TestManagerSet(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		rec := httptest.NewRecorder()
		m.Set(rec, "lang", "es")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "lang", c.Name)
		assert.Equal(t, "es", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)
	})

	t.Run("manager defaults from options", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(cookie.WithSecure(true), cookie.WithDomain("example.com"))

		rec := httptest.NewRecorder()
		m.Set(rec, "lang", "es")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, "example.com", cookies[0].Domain)
	})

	t.Run("per-call options override defaults", func(t *testing.T) {
		t.Parallel()
		m := cookie.New(cookie.WithPath("/app"))

		rec := httptest.NewRecorder()
		m.Set(rec, "lang", "es",
			cookie.WithPath("/"),
			cookie.WithMaxAge(60),
			cookie.WithHTTPOnly(false),
		)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.False(t, cookies[0].HttpOnly)
	})

	t.Run("per-call options do not leak into later writes", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		rec := httptest.NewRecorder()
		m.Set(rec, "a", "1", cookie.WithMaxAge(60))
		m.Set(rec, "b", "2")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, 60, cookies[0].MaxAge)
		assert.Equal(t, 0, cookies[1].MaxAge)
	})
}

func TestManagerGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "zh"})

		v, err := m.Get(req, "lang")
		require.NoError(t, err)
		assert.Equal(t, "zh", v)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.Get(req, "lang")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))

	rec := httptest.NewRecorder()
	m.Delete(rec, "lang")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "lang", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	// Expiry attributes must match the write attributes or the browser
	// treats it as a different cookie.
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "/", c.Path)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:     "/app",
		Domain:   "example.com",
		MaxAge:   120,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	m := cookie.NewFromConfig(cfg)

	rec := httptest.NewRecorder()
	m.Set(rec, "lang", "es")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 120, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
