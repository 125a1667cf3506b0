package locale

import "net/http"

// Resolver computes the active locale for a render pass. It is stateless
// with respect to requests: the registry is immutable and the preference
// read is a single lookup against client-held state, so a shared Resolver
// is safe for concurrent use without locking.
type Resolver struct {
	registry *Registry
	pref     *Preference
}

// NewResolver creates a resolver over the given registry. The preference
// store is optional; without it ResolveRequest negotiates from headers
// alone.
func NewResolver(registry *Registry, pref *Preference) *Resolver {
	return &Resolver{registry: registry, pref: pref}
}

// Registry returns the registry the resolver validates against.
func (rs *Resolver) Registry() *Registry {
	return rs.registry
}

// Resolve returns the stored preference when it is a member of the
// supported set and the registry default otherwise. Membership is exact:
// any value outside the set - absent, malformed, or a region variant of
// a member - resolves to the default, never to a "close" member. A stale
// or tampered value is silently discarded; it never reaches rendering.
// A preference equal to the default is valid and returned as-is.
func (rs *Resolver) Resolve(stored Locale) Locale {
	l, err := Parse(string(stored))
	if err == nil && rs.registry.Contains(l) {
		return l
	}
	return rs.registry.Default()
}

// ResolveRequest determines the active locale for a request, checking
// sources in priority order:
//
//  1. Stored preference cookie
//  2. Accept-Language negotiation
//  3. Registry default
//
// Every branch returns a member of the supported set, so the result can
// be handed straight to the rendering layer.
func (rs *Resolver) ResolveRequest(r *http.Request) Locale {
	if rs.pref != nil {
		if stored, ok := rs.pref.Read(r); ok && rs.registry.Contains(stored) {
			return stored
		}
	}

	if l, ok := negotiate(r.Header.Get("Accept-Language"), rs.registry); ok {
		return l
	}

	return rs.registry.Default()
}
