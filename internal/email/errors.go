package email

import "fmt"

// ValidationError indica que el request no cumple las reglas de forma.
// Nunca llega al transporte.
type ValidationError struct {
	Reason string // mensaje legible de la primera regla violada
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("email: validación: %s", e.Reason)
}

// TransportError indica una falla del colaborador de transporte (SMTP).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("email: transporte: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
