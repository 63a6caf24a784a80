package router

import (
	"github.com/go-chi/chi/v5"
)

// registerHealthRoutes registra los health checks.
// Sin logging: son muy frecuentes y no aportan señal.
func registerHealthRoutes(r chi.Router, deps Deps) {
	c := deps.Health
	if c == nil {
		return
	}

	r.Get("/healthz", c.Healthz)
	r.Get("/readyz", c.Readyz)
}
