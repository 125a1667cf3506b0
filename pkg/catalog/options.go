package catalog

import (
	"log/slog"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// Option configures a Bundle.
type Option func(*Bundle)

// WithDefaultLocale sets the locale whose table backs render contexts for
// locales without one of their own. The bundle must contain a table for
// it. Defaults to "en".
func WithDefaultLocale(l locale.Locale) Option {
	return func(b *Bundle) {
		if l != "" {
			b.def = l
		}
	}
}

// WithFallbackToKey determines whether a missing key renders as the key
// itself. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(b *Bundle) {
		b.fallbackToKey = fallback
	}
}

// WithLogger provides a logger for load events. Defaults to discard.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}
