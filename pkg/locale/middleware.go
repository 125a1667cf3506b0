package locale

import "net/http"

// Middleware resolves the active locale once per request and stores it in
// the request context, where handlers and the rendering layer read it via
// FromContext. Downstream code never re-resolves; the value in context is
// the single source of truth for the render pass.
func Middleware(rs *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := rs.ResolveRequest(r)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), l)))
		})
	}
}
