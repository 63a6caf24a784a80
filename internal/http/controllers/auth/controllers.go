// Package auth contiene los controllers de autenticación.
package auth

import (
	svc "github.com/pymesoft/gestion/internal/http/services/auth"
)

const (
	maxAuthBodySize = 64 * 1024 // 64KB
	contentTypeJSON = "application/json; charset=utf-8"
)

// Controllers agrupa los controllers del dominio auth.
type Controllers struct {
	Login    *LoginController
	Register *RegisterController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Login:    NewLoginController(s.Login),
		Register: NewRegisterController(s.Register),
	}
}
