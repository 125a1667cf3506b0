// Package cookie provides a small HTTP cookie manager with shared
// defaults and per-call overrides.
//
// The Manager type wraps net/http's http.Cookie with helpers for
// setting, reading, and deleting cookies. It carries a set of default
// attributes (site-wide path, HttpOnly, SameSite=Lax) that individual
// writes can override through functional options:
//
//	man := cookie.New(cookie.WithSecure(true))
//	man.Set(w, "lang", "es", cookie.WithMaxAge(31536000))
//	v, err := man.Get(r, "lang")
//	man.Delete(w, "lang")
//
// Get returns ErrCookieNotFound when the request carries no cookie of
// that name, so callers can distinguish absence from other failures with
// errors.Is.
//
// The Config struct allows the manager to be constructed from
// environment variables via github.com/caarlos0/env. Only non-zero
// fields are applied.
package cookie
