// Package email contiene el service de envío de correo transaccional.
package email

import (
	"context"

	emailx "github.com/pymesoft/gestion/internal/email"
)

// SendService define la operación de envío.
type SendService interface {
	Send(ctx context.Context, req emailx.Request) (*emailx.Descriptor, error)
}

// Services agrupa los services del dominio email.
type Services struct {
	Send SendService
}

type sendService struct {
	dispatcher *emailx.Dispatcher
}

// NewSendService crea el service sobre el dispatcher configurado.
func NewSendService(d *emailx.Dispatcher) SendService {
	return &sendService{dispatcher: d}
}

// Send delega en el dispatcher: validación primero, un solo intento de
// entrega después. Los errores tipados del dispatcher suben tal cual.
func (s *sendService) Send(ctx context.Context, req emailx.Request) (*emailx.Descriptor, error) {
	return s.dispatcher.Send(ctx, req)
}
