// Package email contiene DTOs para el endpoint de envío de correo.
package email

// SendRequest representa el body de POST /v1/email/send.
// Campos desconocidos se rechazan en el controller (DisallowUnknownFields).
type SendRequest struct {
	// Email es el destinatario (sintaxis válida requerida).
	Email string `json:"email"`
	// Subject: 3 a 255 caracteres.
	Subject string `json:"subject"`
	// Message: mínimo 5 caracteres.
	Message string `json:"message"`
}

// SendResponse es la respuesta de un envío exitoso: el descriptor entregado
// al transporte.
type SendResponse struct {
	Success bool   `json:"success"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
}
