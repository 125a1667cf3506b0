package locale

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Switcher performs the user-triggered language change: persist the new
// preference, then force a full reload of the current page. The full
// reload is deliberate - translated content may already sit in rendered
// markup, cached fragments, or client-held state, and only a rebuild of
// every render context guarantees all of it refreshes consistently.
// In-place re-render is a possible future optimization, not a goal.
type Switcher struct {
	registry *Registry
	pref     *Preference
	fallback string
	logger   *slog.Logger
}

// SwitcherOption configures a Switcher.
type SwitcherOption func(*Switcher)

// WithFallbackURL sets the reload target used when the request carries no
// usable referrer. Defaults to "/".
func WithFallbackURL(u string) SwitcherOption {
	return func(s *Switcher) {
		if u != "" {
			s.fallback = u
		}
	}
}

// WithLogger provides a logger for switch events. Defaults to discard.
func WithLogger(logger *slog.Logger) SwitcherOption {
	return func(s *Switcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSwitcher creates a switch controller over the given registry and
// preference store.
func NewSwitcher(registry *Registry, pref *Preference, opts ...SwitcherOption) *Switcher {
	s := &Switcher{
		registry: registry,
		pref:     pref,
		fallback: "/",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Switch persists the chosen locale with the configured expiry horizon
// and triggers a full reload of the page the visitor came from.
//
// The input is open HTTP data, so unlike a closed-choice UI the supported
// set must be enforced here: any value that is not a member of the set -
// malformed, unknown, or a region variant of a member - returns
// ErrUnsupportedLocale without touching the stored preference. Rapid
// repeated switches are last-write-wins; the reload from the final
// invocation is the one the visitor sees.
func (s *Switcher) Switch(w http.ResponseWriter, r *http.Request, raw string) error {
	l, err := Parse(raw)
	if err != nil || !s.registry.Contains(l) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}

	s.pref.Write(w, l)
	s.logger.InfoContext(r.Context(), "locale switched", "locale", l.String())

	return s.reload(w, r)
}

// reload redirects back to the referring page so every render context is
// rebuilt under the new preference. Cross-host referrers are ignored to
// keep this from becoming an open redirect.
func (s *Switcher) reload(w http.ResponseWriter, r *http.Request) error {
	target := s.fallback
	if referer := r.Header.Get("Referer"); referer != "" && isSameHost(referer, r) {
		target = referer
	}

	// Reactive clients expect the redirect over the event stream.
	if isEventStream(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(target)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
	return nil
}

// isSameHost checks if a URL is safe to redirect to
func isSameHost(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	// Empty host means a relative URL
	return parsed.Host == "" || parsed.Host == r.Host
}

// isEventStream reports whether the client negotiated an SSE response,
// which is how DataStar-style reactive front ends receive redirects.
func isEventStream(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
