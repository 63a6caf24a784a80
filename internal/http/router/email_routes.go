package router

import (
	"github.com/go-chi/chi/v5"

	mw "github.com/pymesoft/gestion/internal/http/middlewares"
)

// registerEmailRoutes registra las rutas de correo transaccional.
func registerEmailRoutes(r chi.Router, deps Deps) {
	c := deps.Email
	if c == nil {
		return
	}

	r.Group(func(r chi.Router) {
		r.Use(
			mw.WithRateLimit(deps.EmailLimiter),
			mw.WithLogging(),
		)

		r.Post("/v1/email/send", c.Send)
	})
}
