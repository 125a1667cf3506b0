package locale

import "context"

// DefaultLocale is returned by FromContext when no locale was resolved
// for the request.
const DefaultLocale Locale = "en"

// localeContextKey is the key for storing the resolved locale in context
type localeContextKey struct{}

// WithContext returns a context carrying the resolved locale. The locale
// is computed once per request and passed explicitly through context
// rather than read from any ambient global.
func WithContext(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, l)
}

// FromContext returns the locale resolved for this request.
// If none was set, it returns DefaultLocale.
func FromContext(ctx context.Context) Locale {
	l, _ := ctx.Value(localeContextKey{}).(Locale)
	if l == "" {
		return DefaultLocale
	}
	return l
}
