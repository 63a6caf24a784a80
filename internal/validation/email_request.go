package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Límites del request de envío de email.
const (
	SubjectMinLen = 3
	SubjectMaxLen = 255
	MessageMinLen = 5
)

// ValidEmail retorna true si addr es una dirección de email sintácticamente
// válida (RFC 5322 addr-spec, sin display name).
func ValidEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// Rechazar formas con display name ("Nombre <a@b.cl>")
	return parsed.Address == addr
}

// EmailRequest valida los campos del request de envío.
// Retorna el primer mensaje de violación (en español) o "" si es válido.
func EmailRequest(email, subject, message string) string {
	if strings.TrimSpace(email) == "" {
		return "El email del destinatario es obligatorio"
	}
	if !ValidEmail(email) {
		return "El email del destinatario no tiene un formato válido"
	}
	if strings.TrimSpace(subject) == "" {
		return "El asunto es obligatorio"
	}
	if n := utf8.RuneCountInString(subject); n < SubjectMinLen {
		return fmt.Sprintf("El asunto debe tener al menos %d caracteres", SubjectMinLen)
	} else if n > SubjectMaxLen {
		return fmt.Sprintf("El asunto no puede superar los %d caracteres", SubjectMaxLen)
	}
	if strings.TrimSpace(message) == "" {
		return "El mensaje es obligatorio"
	}
	if utf8.RuneCountInString(message) < MessageMinLen {
		return fmt.Sprintf("El mensaje debe tener al menos %d caracteres", MessageMinLen)
	}
	return ""
}
