// Package router arma el árbol de rutas HTTP y sus middleware chains.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httpx "github.com/pymesoft/gestion/internal/http"
	authctrl "github.com/pymesoft/gestion/internal/http/controllers/auth"
	emailctrl "github.com/pymesoft/gestion/internal/http/controllers/email"
	healthctrl "github.com/pymesoft/gestion/internal/http/controllers/health"
	httperrors "github.com/pymesoft/gestion/internal/http/errors"
	mw "github.com/pymesoft/gestion/internal/http/middlewares"
	"github.com/pymesoft/gestion/internal/rate"
)

// Deps contiene todas las dependencias del router.
type Deps struct {
	Auth   *authctrl.Controllers
	Email  *emailctrl.SendController
	Health *healthctrl.Controller

	// Limiters opcionales, por grupo de rutas. nil desactiva el límite.
	AuthLimiter  rate.Limiter
	EmailLimiter rate.Limiter

	// Handler de /metrics. nil omite la ruta.
	Metrics http.Handler
}

// New construye el handler raíz del servidor.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chain base: aplica a todas las rutas.
	r.Use(
		mw.WithRecover(),
		mw.WithRequestID(),
		mw.WithSecurityHeaders(),
		httpx.WithMetrics(),
	)

	registerAuthRoutes(r, deps)
	registerEmailRoutes(r, deps)
	registerHealthRoutes(r, deps)

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	return r
}
