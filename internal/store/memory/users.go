// Package memory implementa el directorio de usuarios en memoria.
// Se usa en tests y en modo dev sin Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pymesoft/gestion/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository en memoria.
// Check-then-insert ocurre bajo un solo lock, por lo que la invariante de
// unicidad se sostiene también ante registros concurrentes.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*repository.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byEmail: make(map[string]*repository.User)}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepo) Create(ctx context.Context, input repository.CreateUserInput) (*repository.User, error) {
	role := input.Role
	if role == "" {
		role = repository.RoleUser
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[input.Email]; exists {
		return nil, repository.ErrConflict
	}

	u := &repository.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Rut:          input.Rut,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	r.byEmail[input.Email] = u

	cp := *u
	return &cp, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail), nil
}

func (r *UserRepo) List(ctx context.Context, filter repository.ListUsersFilter) ([]repository.User, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	r.mu.RLock()
	all := make([]repository.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		all = append(all, *u)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	if filter.Offset >= len(all) {
		return []repository.User{}, nil
	}
	end := filter.Offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[filter.Offset:end], nil
}
