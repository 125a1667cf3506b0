package locale

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router exposes the switch operation over HTTP for mounting into an
// application router. Only POST is routed; the chosen locale is read
// from the "locale" form value, or from the query string on a POST
// without a body.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(locale.Middleware(resolver))
//	r.Mount("/locale", locale.Router(switcher))
//
//	// <form method="post" action="/locale"><button name="locale" value="es">
func Router(s *Switcher) chi.Router {
	r := chi.NewRouter()

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		raw := req.FormValue("locale")

		if err := s.Switch(w, req, raw); err != nil {
			// Validation failure on open input is reportable, not fatal.
			if errors.Is(err, ErrUnsupportedLocale) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	return r
}
