package pg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pymesoft/gestion/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository sobre Postgres.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	const q = `
SELECT id, full_name, rut, email, password_hash, role, created_at
FROM app_user
WHERE email = $1;
`
	var u repository.User
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&u.ID, &u.FullName, &u.Rut, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	const q = `
SELECT id, full_name, rut, email, password_hash, role, created_at
FROM app_user
WHERE id = $1;
`
	var u repository.User
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&u.ID, &u.FullName, &u.Rut, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, input repository.CreateUserInput) (*repository.User, error) {
	role := input.Role
	if role == "" {
		role = repository.RoleUser
	}
	const q = `
INSERT INTO app_user (id, full_name, rut, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, full_name, rut, email, password_hash, role, created_at;
`
	var u repository.User
	err := r.pool.QueryRow(ctx, q,
		uuid.NewString(), input.FullName, input.Rut, input.Email, input.PasswordHash, role,
	).Scan(&u.ID, &u.FullName, &u.Rut, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM app_user;`).Scan(&n)
	return n, err
}

func (r *UserRepo) List(ctx context.Context, filter repository.ListUsersFilter) ([]repository.User, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	const q = `
SELECT id, full_name, rut, email, password_hash, role, created_at
FROM app_user
ORDER BY created_at ASC
LIMIT $1 OFFSET $2;
`
	rows, err := r.pool.Query(ctx, q, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]repository.User, 0, limit)
	for rows.Next() {
		var u repository.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Rut, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
