package locale

import (
	"time"

	"github.com/dmitrymomot/localekit/pkg/cookie"
)

// Config holds locale subsystem configuration
type Config struct {
	// CookieName is the name of the preference cookie (default: "lang")
	CookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"lang"`

	// Default is the locale used when no valid preference is stored
	Default string `env:"LOCALE_DEFAULT" envDefault:"en"`

	// Supported is the ordered list of locale codes offered to visitors
	Supported []string `env:"LOCALE_SUPPORTED" envSeparator:"," envDefault:"en"`

	// TTL is the expiry horizon for the stored preference (default: one year)
	TTL time.Duration `env:"LOCALE_COOKIE_TTL" envDefault:"8760h"`

	// SecureCookies enables the Secure flag on the preference cookie
	// (recommended for production)
	SecureCookies bool `env:"LOCALE_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default locale configuration
func DefaultConfig() Config {
	return Config{
		CookieName:    "lang",
		Default:       "en",
		Supported:     []string{"en"},
		TTL:           DefaultTTL,
		SecureCookies: false,
	}
}

// NewFromConfig wires the full subsystem - registry, preference store,
// resolver, and switch controller - from the provided Config.
func NewFromConfig(cfg Config, cookies *cookie.Manager, opts ...SwitcherOption) (*Resolver, *Switcher, error) {
	registry, err := NewRegistry(cfg.Default, cfg.Supported...)
	if err != nil {
		return nil, nil, err
	}

	prefOpts := []PreferenceOption{WithTTL(cfg.TTL)}
	if cfg.SecureCookies {
		prefOpts = append(prefOpts, WithCookieOptions(cookie.WithSecure(true)))
	}
	pref := NewPreference(cookies, cfg.CookieName, prefOpts...)

	return NewResolver(registry, pref), NewSwitcher(registry, pref, opts...), nil
}
