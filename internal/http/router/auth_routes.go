package router

import (
	"github.com/go-chi/chi/v5"

	mw "github.com/pymesoft/gestion/internal/http/middlewares"
)

// registerAuthRoutes registra las rutas de autenticación.
// Devuelven credenciales: siempre con Cache-Control: no-store.
func registerAuthRoutes(r chi.Router, deps Deps) {
	c := deps.Auth
	if c == nil {
		return
	}

	r.Group(func(r chi.Router) {
		r.Use(
			mw.WithNoStore(),
			mw.WithRateLimit(deps.AuthLimiter),
			mw.WithLogging(),
		)

		r.Post("/v1/auth/login", c.Login.Login)
		r.Post("/v1/auth/register", c.Register.Register)
	})
}
