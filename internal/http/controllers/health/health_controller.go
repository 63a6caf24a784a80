// Package health contiene los endpoints de liveness/readiness.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pymesoft/gestion/internal/observability/logger"
)

// ReadyCheck es una sonda de dependencia (ej: ping a Postgres).
type ReadyCheck func(ctx context.Context) error

// Controller maneja /healthz y /readyz.
type Controller struct {
	checks map[string]ReadyCheck
}

// NewController crea el controller con las sondas dadas.
func NewController(checks map[string]ReadyCheck) *Controller {
	return &Controller{checks: checks}
}

// Healthz responde 200 si el proceso está vivo.
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Readyz responde 200 solo si todas las dependencias responden.
func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	out := make(map[string]string, len(c.checks))
	for name, check := range c.checks {
		if err := check(ctx); err != nil {
			logger.From(r.Context()).Warn("readiness check failed",
				logger.String("check", name), logger.Err(err))
			out[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		out[name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(out)
}
