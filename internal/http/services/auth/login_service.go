package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/pymesoft/gestion/internal/domain/repository"
	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
	jwtx "github.com/pymesoft/gestion/internal/jwt"
	"github.com/pymesoft/gestion/internal/observability/logger"
	"github.com/pymesoft/gestion/internal/security/password"
)

// Errores de login (sentinel). El controller los mapea a la respuesta HTTP;
// cualquier otro error se trata como interno y no se detalla al caller.
var (
	ErrLoginMissingFields = errors.New("missing required fields")
	ErrUnknownEmail       = errors.New("unknown email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginInternal      = errors.New("login internal error")
)

// LoginDeps contiene las dependencias del login service.
type LoginDeps struct {
	Users  repository.UserRepository
	Issuer *jwtx.Issuer
}

type loginService struct {
	deps LoginDeps
}

// NewLoginService crea un nuevo servicio de login.
func NewLoginService(deps LoginDeps) LoginService {
	return &loginService{deps: deps}
}

func (s *loginService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
	)

	// Normalización
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.Email == "" || in.Password == "" {
		return nil, ErrLoginMissingFields
	}

	// Paso 1: buscar usuario por email
	user, err := s.deps.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			log.Debug("email not found")
			return nil, ErrUnknownEmail
		}
		// directorio inalcanzable u otra falla inesperada: se loguea el
		// detalle, el caller recibe solo el error genérico
		log.Error("user lookup failed", logger.Err(err))
		return nil, ErrLoginInternal
	}

	log = log.With(logger.UserID(user.ID))

	// Paso 2: verificar password contra el hash almacenado
	if !password.Verify(in.Password, user.PasswordHash) {
		log.Debug("password check failed")
		return nil, ErrInvalidCredentials
	}

	// Paso 3/4: claims de sesión + token con TTL fijo
	token, _, err := s.deps.Issuer.Issue(jwtx.SessionClaims{
		FullName: user.FullName,
		Email:    user.Email,
		Rut:      user.Rut,
		Role:     user.Role,
	})
	if err != nil {
		log.Error("token issue failed", logger.Err(err))
		return nil, ErrLoginInternal
	}

	log.Info("login ok", logger.Role(user.Role))
	return &dto.LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(s.deps.Issuer.AccessTTL.Seconds()),
	}, nil
}
