package email

import (
	"context"
	"fmt"

	"github.com/pymesoft/gestion/internal/observability/logger"
	"github.com/pymesoft/gestion/internal/validation"
)

// Dispatcher valida requests de envío y los entrega al Sender configurado.
type Dispatcher struct {
	sender   Sender
	from     string // mailbox del remitente
	fromName string // display name
}

// NewDispatcher crea un Dispatcher. El remitente queda fijo por configuración.
func NewDispatcher(sender Sender, from, fromName string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from, fromName: fromName}
}

// Send valida el request, construye el descriptor y lo entrega al transporte.
// Un solo intento de entrega por llamada.
func (d *Dispatcher) Send(ctx context.Context, req Request) (*Descriptor, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("email.dispatcher"),
		logger.Op("Send"),
	)

	if msg := validation.EmailRequest(req.To, req.Subject, req.Message); msg != "" {
		log.Debug("request rejected", logger.String("reason", msg))
		return nil, &ValidationError{Reason: msg}
	}

	desc := &Descriptor{
		From:     fmt.Sprintf("%q <%s>", d.fromName, d.from),
		To:       req.To,
		Subject:  req.Subject,
		TextBody: req.Message,
		HTMLBody: fmt.Sprintf("<p>%s</p>", req.Message),
	}

	if err := d.sender.Send(desc.To, desc.Subject, desc.HTMLBody, desc.TextBody); err != nil {
		log.Error("delivery failed", logger.Err(err))
		return nil, &TransportError{Err: err}
	}

	log.Info("email dispatched", logger.String("to", desc.To))
	return desc, nil
}
