// Package bootstrap inicializa datos mínimos al arrancar el servicio.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pymesoft/gestion/internal/config"
	"github.com/pymesoft/gestion/internal/domain/repository"
	"github.com/pymesoft/gestion/internal/observability/logger"
	"github.com/pymesoft/gestion/internal/security/password"
	"github.com/pymesoft/gestion/internal/validation"
)

// ErrSeedIncomplete indica que el directorio está vacío pero falta
// configuración para crear el administrador inicial.
var ErrSeedIncomplete = errors.New("seed: admin email and password required")

// SeedAdmin garantiza que exista al menos una cuenta Administrator.
// Si el directorio ya tiene usuarios no hace nada: el seed corre una sola
// vez sobre un storage vacío, nunca pisa cuentas existentes.
func SeedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	log := logger.Named("bootstrap")

	n, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		log.Debug("seed skipped, directory not empty", logger.Count(n))
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	if email == "" || cfg.Seed.AdminPassword == "" {
		return ErrSeedIncomplete
	}
	if !validation.ValidEmail(email) {
		return fmt.Errorf("seed: invalid admin email %q", email)
	}
	if cfg.Seed.AdminRut != "" && !validation.ValidRut(cfg.Seed.AdminRut) {
		return fmt.Errorf("seed: invalid admin rut %q", cfg.Seed.AdminRut)
	}

	fullName := cfg.Seed.AdminFullName
	if fullName == "" {
		fullName = "Administrador"
	}

	hash, err := password.Hash(password.Default, cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	u, err := users.Create(ctx, repository.CreateUserInput{
		FullName:     fullName,
		Rut:          cfg.Seed.AdminRut,
		Email:        email,
		PasswordHash: hash,
		Role:         repository.RoleAdministrator,
	})
	if err != nil {
		// otra instancia pudo ganar la carrera del primer arranque
		if repository.IsConflict(err) {
			log.Info("seed admin already created by peer", logger.Email(email))
			return nil
		}
		return fmt.Errorf("seed: create admin: %w", err)
	}

	log.Info("seed admin created", logger.Email(u.Email), logger.String("id", u.ID))
	return nil
}
