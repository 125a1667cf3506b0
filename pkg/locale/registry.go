package locale

import (
	"fmt"
	"slices"
)

// Registry holds the immutable set of supported locales and the single
// default locale. It is process-wide static configuration: construct it
// once at startup and share it freely, no locking required.
type Registry struct {
	supported []Locale
	index     map[Locale]struct{}
	def       Locale
}

// NewRegistry builds a registry from the default locale and the ordered
// list of supported locales. The order of supported is preserved and is
// meaningful to UI iteration (display order). Duplicates are dropped,
// keeping the first occurrence. The default must be a member of the
// supported set.
func NewRegistry(defaultLocale string, supported ...string) (*Registry, error) {
	if len(supported) == 0 {
		return nil, ErrNoSupportedLocales
	}

	r := &Registry{
		supported: make([]Locale, 0, len(supported)),
		index:     make(map[Locale]struct{}, len(supported)),
	}

	for _, s := range supported {
		l, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("supported locale %q: %w", s, err)
		}
		if _, dup := r.index[l]; dup {
			continue
		}
		r.index[l] = struct{}{}
		r.supported = append(r.supported, l)
	}

	def, err := Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("default locale %q: %w", defaultLocale, err)
	}
	if !r.Contains(def) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultNotSupported, def)
	}
	r.def = def

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid configuration.
func MustNewRegistry(defaultLocale string, supported ...string) *Registry {
	r, err := NewRegistry(defaultLocale, supported...)
	if err != nil {
		panic(err)
	}
	return r
}

// Supported returns the supported locales in display order.
// The returned slice is a copy and safe to modify.
func (r *Registry) Supported() []Locale {
	return slices.Clone(r.supported)
}

// Default returns the registry's default locale.
func (r *Registry) Default() Locale {
	return r.def
}

// Contains reports whether l is a member of the supported set.
// Membership is exact: a region variant of a member ("es-mx" with
// supported "es") is not itself a member. Base-language mapping happens
// only during Accept-Language negotiation, never for stored or
// user-submitted values.
func (r *Registry) Contains(l Locale) bool {
	_, ok := r.index[l]
	return ok
}
