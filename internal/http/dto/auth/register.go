package auth

import "time"

// RegisterRequest representa el body de POST /v1/auth/register.
type RegisterRequest struct {
	// FullName es obligatorio.
	FullName string `json:"fullName"`
	// Rut es obligatorio, formato NN.NNN.NNN-D.
	Rut string `json:"rut"`
	// Email es obligatorio y debe ser único.
	Email string `json:"email"`
	// Password es obligatorio.
	Password string `json:"password"`
}

// RegisterResponse es la respuesta de un registro exitoso.
// El hash del password nunca se expone al cliente.
type RegisterResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}

// PublicUser es la vista del usuario sin campos sensibles.
type PublicUser struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Rut       string    `json:"rut"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterResult es el resultado interno del RegisterService.
type RegisterResult struct {
	UserID    string
	FullName  string
	Rut       string
	Email     string
	Role      string
	CreatedAt time.Time
}
