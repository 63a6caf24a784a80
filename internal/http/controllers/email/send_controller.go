// Package email contiene el controller del endpoint de envío de correo.
package email

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	emailx "github.com/pymesoft/gestion/internal/email"
	httpx "github.com/pymesoft/gestion/internal/http"
	dto "github.com/pymesoft/gestion/internal/http/dto/email"
	httperrors "github.com/pymesoft/gestion/internal/http/errors"
	svc "github.com/pymesoft/gestion/internal/http/services/email"
	"github.com/pymesoft/gestion/internal/observability/logger"
)

const maxSendBodySize = 32 << 10 // 32KB

// SendController maneja POST /v1/email/send.
type SendController struct {
	service svc.SendService
}

// NewSendController crea un nuevo controller de envío.
func NewSendController(service svc.SendService) *SendController {
	return &SendController{service: service}
}

// Send maneja el envío de un correo transaccional.
func (c *SendController) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("SendController.Send"))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSendBodySize)
	defer r.Body.Close()

	// Un campo desconocido es por sí mismo una falla de validación.
	var req dto.SendRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("El cuerpo contiene campos desconocidos o JSON inválido"))
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return
	}

	desc, err := c.service.Send(ctx, emailx.Request{
		To:      req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeSendError(w, err, log)
		return
	}

	httpx.CountEmail("ok")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.SendResponse{
		Success: true,
		From:    desc.From,
		To:      desc.To,
		Subject: desc.Subject,
	})
}

// writeSendError mapea errores del dispatcher a la respuesta HTTP.
func writeSendError(w http.ResponseWriter, err error, log *zap.Logger) {
	var ve *emailx.ValidationError
	if errors.As(err, &ve) {
		httpx.CountEmail("validation")
		log.Debug("send rejected", logger.String("reason", ve.Reason))
		httperrors.WriteError(w, httperrors.ErrValidation.WithMessage(ve.Reason))
		return
	}

	var te *emailx.TransportError
	if errors.As(err, &te) {
		httpx.CountEmail("transport")
		log.Error("transport failure", logger.Err(te.Err))
		httperrors.WriteError(w, httperrors.ErrBadGateway.WithDetail(te.Err.Error()))
		return
	}

	log.Error("unexpected send error", logger.Err(err))
	httperrors.WriteError(w, httperrors.ErrInternalServerError)
}
