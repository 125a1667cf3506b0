package catalog

import (
	"context"
	"regexp"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// RenderContext pairs a resolved locale with the translated strings for
// one render pass. Create one per request, hand it to the templates, and
// drop it when the pass completes - it holds no mutable state and no
// resources.
type RenderContext struct {
	locale        locale.Locale
	table         map[string]string
	fallbackToKey bool
}

// Context builds the render context for a locale. Locales without their
// own table fall back to the base language table, then to the bundle's
// default - a render pass always gets usable strings.
func (b *Bundle) Context(l locale.Locale) *RenderContext {
	return &RenderContext{
		locale:        l,
		table:         b.table(l),
		fallbackToKey: b.fallbackToKey,
	}
}

// FromRequest builds the render context for the locale resolved into the
// request context by locale.Middleware.
func (b *Bundle) FromRequest(ctx context.Context) *RenderContext {
	return b.Context(locale.FromContext(ctx))
}

// Locale returns the locale this render pass runs under.
func (rc *RenderContext) Locale() locale.Locale {
	return rc.locale
}

// Has reports whether the key exists in this context's table.
func (rc *RenderContext) Has(key string) bool {
	_, ok := rc.table[key]
	return ok
}

// paramRegex finds named placeholders in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// T returns the translated string for a dot-path key, substituting
// %{name} placeholders from key-value argument pairs:
//
//	rc.T("greeting", "name", "Ada")  // "Hello, %{name}!" -> "Hello, Ada!"
//
// A missing key falls back to the key itself unless the bundle was built
// with WithFallbackToKey(false), in which case it returns "".
func (rc *RenderContext) T(key string, args ...string) string {
	tmpl, ok := rc.table[key]
	if !ok {
		if rc.fallbackToKey {
			return substitute(key, args)
		}
		return ""
	}
	return substitute(tmpl, args)
}

// Td returns the translated string for a key, falling back to an
// explicit default rather than the key itself.
func (rc *RenderContext) Td(key, defaultValue string, args ...string) string {
	tmpl, ok := rc.table[key]
	if !ok {
		return substitute(defaultValue, args)
	}
	return substitute(tmpl, args)
}

// substitute replaces %{name} placeholders using key-value pairs.
// An odd trailing argument is ignored; unknown placeholders are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
