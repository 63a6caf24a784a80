package email

// ─── DTOs ───

// Request es el value object transitorio de un envío: existe solo durante
// el dispatch, nunca se persiste.
type Request struct {
	To      string // destinatario
	Subject string // 3–255 caracteres
	Message string // cuerpo plano, >= 5 caracteres
}

// Descriptor es el mensaje ya construido que se entrega al transporte.
type Descriptor struct {
	From     string // `"{DisplayName}" <{mailbox}>` desde configuración
	To       string
	Subject  string
	TextBody string
	HTMLBody string // mensaje plano envuelto en <p>
}

// ─── Configuración SMTP ───

// SMTPConfig contiene la configuración para conectarse a un servidor SMTP.
type SMTPConfig struct {
	Host     string
	Port     int    // default 587
	Username string
	Password string
	From     string // mailbox del remitente
	FromName string // display name del remitente
	TLSMode  string // "auto" | "starttls" | "ssl" | "none"
}

// Sender es el colaborador de transporte. La entrega es sincrónica y de un
// solo intento; reintentar es decisión del caller.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}
