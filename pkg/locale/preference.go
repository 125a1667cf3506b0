package locale

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/localekit/pkg/cookie"
)

// DefaultTTL is the default expiry horizon for a stored preference.
// One year keeps the choice sticky across sessions without holding on
// to it forever.
const DefaultTTL = 365 * 24 * time.Hour

// Preference stores and retrieves the visitor's chosen locale in a
// client-held cookie, so the choice survives across requests without
// any server-side session state.
type Preference struct {
	cookies    *cookie.Manager
	name       string
	ttl        time.Duration
	cookieOpts []cookie.Option
}

// PreferenceOption configures a Preference.
type PreferenceOption func(*Preference)

// WithTTL overrides the default one-year expiry horizon.
func WithTTL(ttl time.Duration) PreferenceOption {
	return func(p *Preference) {
		p.ttl = ttl
	}
}

// WithCookieOptions appends extra cookie options applied on every write,
// e.g. cookie.WithSecure(true) behind TLS.
func WithCookieOptions(opts ...cookie.Option) PreferenceOption {
	return func(p *Preference) {
		p.cookieOpts = append(p.cookieOpts, opts...)
	}
}

// NewPreference creates a cookie-backed preference store. The cookie is
// scoped to the whole site and restricted to SameSite=Lax so it rides
// along on top-level navigations but not on cross-site subrequests.
func NewPreference(cookies *cookie.Manager, name string, opts ...PreferenceOption) *Preference {
	p := &Preference{
		cookies: cookies,
		name:    name,
		ttl:     DefaultTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Read returns the stored locale if present and syntactically valid.
// Absent, empty, and malformed values all read as absent - a tampered
// cookie is never an error, it simply falls back to the default locale
// downstream. Membership in the supported set is the resolver's check,
// not this one.
func (p *Preference) Read(r *http.Request) (Locale, bool) {
	raw, err := p.cookies.Get(r, p.name)
	if err != nil {
		return "", false
	}

	l, err := Parse(raw)
	if err != nil {
		return "", false
	}
	return l, true
}

// Write persists the locale with the configured expiry horizon.
// The effect is observable only on subsequent reads of requests that
// carry the written cookie back.
func (p *Preference) Write(w http.ResponseWriter, l Locale) {
	p.WriteTTL(w, l, p.ttl)
}

// WriteTTL persists the locale with an explicit expiry horizon.
// A zero or negative ttl writes an already-expired cookie, which the
// browser drops immediately - equivalent to clearing the preference.
func (p *Preference) WriteTTL(w http.ResponseWriter, l Locale, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if maxAge <= 0 {
		p.cookies.Delete(w, p.name)
		return
	}

	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithMaxAge(maxAge),
		cookie.WithSameSite(http.SameSiteLaxMode), // CSRF mitigation, still sent on link navigation
	}
	opts = append(opts, p.cookieOpts...)

	p.cookies.Set(w, p.name, l.String(), opts...)
}

// Clear expires the stored preference. This is the external-expiry path
// back to the no-preference state; the switch controller itself never
// clears, only overwrites.
func (p *Preference) Clear(w http.ResponseWriter) {
	p.cookies.Delete(w, p.name)
}

// CookieName returns the cookie key used for the stored preference.
func (p *Preference) CookieName() string {
	return p.name
}
