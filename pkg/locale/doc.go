// Package locale implements locale resolution and switching for web
// applications: which language a render pass runs under, how the
// visitor's choice is persisted, and how switching propagates to every
// rendered surface.
//
// # Overview
//
// Four small pieces cooperate:
//
//   - Registry – the immutable set of supported locales plus the single
//     default. Display order is preserved for UI iteration.
//   - Preference – cookie-backed storage of the visitor's choice. Site
//     wide path, SameSite=Lax, one year expiry by default.
//   - Resolver – computes the active locale for a request: stored
//     preference if it names a supported locale, Accept-Language
//     negotiation otherwise, registry default as the floor. Stale or
//     tampered values are discarded silently, never surfaced as errors.
//   - Switcher – the user-triggered language change: persist the new
//     preference, then force a full reload so every previously rendered
//     (and possibly cached) fragment is regenerated under the new locale.
//
// # Usage
//
//	registry := locale.MustNewRegistry("en", "en", "zh", "es", "id")
//	cookies := cookie.New()
//	pref := locale.NewPreference(cookies, "lang")
//
//	resolver := locale.NewResolver(registry, pref)
//	switcher := locale.NewSwitcher(registry, pref)
//
//	r := chi.NewRouter()
//	r.Use(locale.Middleware(resolver))
//	r.Mount("/locale", locale.Router(switcher))
//
// Handlers read the resolved locale from the request context:
//
//	l := locale.FromContext(r.Context())
//
// # Configuration
//
// The Config struct carries env tags for github.com/caarlos0/env and
// NewFromConfig assembles the wired subsystem from it.
//
// # Design Notes
//
// The resolved locale travels through context.Context, set once per
// request by Middleware - there is no ambient global. The full page
// reload on switch is a deliberate trade: a brief reload buys strict
// consistency across server-rendered markup, cached fragments, and
// client state, which a partial update cannot guarantee.
package locale
