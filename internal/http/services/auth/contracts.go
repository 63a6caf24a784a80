// Package auth contiene los services de autenticación: orquestan directorio
// de usuarios, hasher de credenciales y emisor de tokens.
package auth

import (
	"context"

	dto "github.com/pymesoft/gestion/internal/http/dto/auth"
)

// LoginService define la operación de login por password.
type LoginService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error)
}

// RegisterService define la operación de registro.
type RegisterService interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResult, error)
}

// Services agrupa los services del dominio auth.
type Services struct {
	Login    LoginService
	Register RegisterService
}
