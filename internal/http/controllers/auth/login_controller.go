package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
	httperrors "github.com/pymesoft/gestion/internal/http/errors"
	svc "github.com/pymesoft/gestion/internal/http/services/auth"
	"github.com/pymesoft/gestion/internal/observability/logger"
)

// LoginController maneja el endpoint de login.
type LoginController struct {
	service svc.LoginService
}

// NewLoginController crea un nuevo controller de login.
func NewLoginController(service svc.LoginService) *LoginController {
	return &LoginController{service: service}
}

// Login maneja POST /v1/auth/login
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	// Limitar body
	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBodySize)
	defer r.Body.Close()

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	result, err := c.service.Login(ctx, req)
	if err != nil {
		log.Debug("login failed", logger.Err(err))
		writeLoginError(w, err)
		return
	}

	// El token es un bearer stateless: prohibir caching
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.LoginResponse{
		Success:     true,
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   result.ExpiresIn,
	})
}

// writeLoginError mapea errores del service a la respuesta HTTP.
func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrLoginMissingFields):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("email y password son obligatorios"))

	case errors.Is(err, svc.ErrUnknownEmail):
		httperrors.WriteError(w, httperrors.ErrUnauthorized.WithMessage("El email ingresado no existe."))

	case errors.Is(err, svc.ErrInvalidCredentials):
		httperrors.WriteError(w, httperrors.ErrUnauthorized.WithMessage("La contraseña ingresada es incorrecta"))

	default:
		// el detalle ya quedó logueado en el service
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}
