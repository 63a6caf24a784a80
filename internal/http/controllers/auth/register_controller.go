package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
	httperrors "github.com/pymesoft/gestion/internal/http/errors"
	svc "github.com/pymesoft/gestion/internal/http/services/auth"
	"github.com/pymesoft/gestion/internal/observability/logger"
)

// RegisterController maneja POST /v1/auth/register.
type RegisterController struct {
	service svc.RegisterService
}

// NewRegisterController crea un nuevo controller de registro.
func NewRegisterController(service svc.RegisterService) *RegisterController {
	return &RegisterController{service: service}
}

// Register maneja el alta de usuarios.
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	// Limitar body
	r.Body = http.MaxBytesReader(w, r.Body, maxAuthBodySize)
	defer r.Body.Close()

	var req dto.RegisterRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}
	// Rechazar datos extra después del objeto
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	result, err := c.service.Register(ctx, req)
	if err != nil {
		log.Debug("register failed", logger.Err(err))
		writeRegisterError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(dto.RegisterResponse{
		Success: true,
		User: dto.PublicUser{
			ID:        result.UserID,
			FullName:  result.FullName,
			Rut:       result.Rut,
			Email:     result.Email,
			Role:      result.Role,
			CreatedAt: result.CreatedAt,
		},
	})

	log.Info("user registered", logger.UserID(result.UserID))
}

// writeRegisterError mapea errores del service a la respuesta HTTP.
func writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, svc.ErrRegisterMissingFields):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("fullName, rut, email y password son obligatorios"))

	case errors.Is(err, svc.ErrInvalidEmail):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("El email no tiene un formato válido"))

	case errors.Is(err, svc.ErrInvalidRut):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("El rut no tiene un formato válido (NN.NNN.NNN-D)"))

	case errors.Is(err, svc.ErrEmailTaken):
		httperrors.WriteError(w, httperrors.ErrConflict.WithMessage("El usuario ya existe"))

	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}
