package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/pymesoft/gestion/internal/domain/repository"
	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
	"github.com/pymesoft/gestion/internal/observability/logger"
	"github.com/pymesoft/gestion/internal/security/password"
	"github.com/pymesoft/gestion/internal/validation"
)

// Errores de registro (sentinel).
var (
	ErrRegisterMissingFields = errors.New("missing required fields")
	ErrInvalidRut            = errors.New("invalid rut")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrEmailTaken            = errors.New("email already registered")
	ErrRegisterInternal      = errors.New("register internal error")
)

// RegisterDeps contiene las dependencias del register service.
type RegisterDeps struct {
	Users      repository.UserRepository
	HashParams password.Params
}

type registerService struct {
	deps RegisterDeps
}

// NewRegisterService crea un nuevo servicio de registro.
func NewRegisterService(deps RegisterDeps) RegisterService {
	if deps.HashParams == (password.Params{}) {
		deps.HashParams = password.Default
	}
	return &registerService{deps: deps}
}

func (s *registerService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResult, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
		logger.Op("Register"),
	)

	// Normalización
	in.FullName = strings.TrimSpace(in.FullName)
	in.Rut = strings.TrimSpace(in.Rut)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.FullName == "" || in.Rut == "" || in.Email == "" || in.Password == "" {
		return nil, ErrRegisterMissingFields
	}
	if !validation.ValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.ValidRut(in.Rut) {
		return nil, ErrInvalidRut
	}

	// Paso 1: chequeo rápido de existencia. No es el árbitro final: dos
	// registros concurrentes pueden pasar ambos este punto; la constraint
	// de unicidad del storage resuelve en Create.
	if _, err := s.deps.Users.GetByEmail(ctx, in.Email); err == nil {
		log.Debug("email already registered")
		return nil, ErrEmailTaken
	} else if !repository.IsNotFound(err) {
		log.Error("user lookup failed", logger.Err(err))
		return nil, ErrRegisterInternal
	}

	// Paso 2: hashear password
	hash, err := password.Hash(s.deps.HashParams, in.Password)
	if err != nil {
		log.Error("password hash failed", logger.Err(err))
		return nil, ErrRegisterInternal
	}

	// Paso 3/4: crear con rol "user"; ErrConflict del storage significa que
	// otro registro ganó la carrera con el mismo email
	user, err := s.deps.Users.Create(ctx, repository.CreateUserInput{
		FullName:     in.FullName,
		Rut:          in.Rut,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         repository.RoleUser,
	})
	if err != nil {
		if repository.IsConflict(err) {
			log.Debug("create lost uniqueness race")
			return nil, ErrEmailTaken
		}
		log.Error("user create failed", logger.Err(err))
		return nil, ErrRegisterInternal
	}

	log.Info("user registered", logger.UserID(user.ID))
	return &dto.RegisterResult{
		UserID:    user.ID,
		FullName:  user.FullName,
		Rut:       user.Rut,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}
