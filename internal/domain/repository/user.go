package repository

import (
	"context"
	"time"
)

// Roles de usuario. "Administrator" solo se crea por la vía de seed.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "user"
)

// User representa un titular de cuenta del sistema.
type User struct {
	ID           string
	FullName     string
	Rut          string // formato NN.NNN.NNN-D
	Email        string // único, normalizado (lower+trim) en el service
	PasswordHash string // PHC string, nunca el plaintext
	Role         string // RoleAdministrator | RoleUser
	CreatedAt    time.Time
}

// CreateUserInput contiene los datos para crear un usuario.
type CreateUserInput struct {
	FullName     string
	Rut          string
	Email        string
	PasswordHash string
	Role         string
}

// ListUsersFilter opciones de paginación para listar usuarios.
type ListUsersFilter struct {
	Limit  int // default 50, max 200
	Offset int
}

// UserRepository define las operaciones del directorio de usuarios.
type UserRepository interface {
	// GetByEmail busca un usuario por email.
	// Retorna ErrNotFound si no existe.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID busca un usuario por ID.
	// Retorna ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (*User, error)

	// Create inserta un nuevo usuario.
	// Retorna ErrConflict si el email ya existe. La restricción de unicidad
	// del storage es el árbitro final ante inserts concurrentes.
	Create(ctx context.Context, input CreateUserInput) (*User, error)

	// Count retorna la cantidad total de usuarios (para el seed check).
	Count(ctx context.Context) (int, error)

	// List lista usuarios con paginación.
	List(ctx context.Context, filter ListUsersFilter) ([]User, error)
}
