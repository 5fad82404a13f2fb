package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/bagdasarian/project-tracker/internal/repository"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(executor DBExecutor) *userRepository {
	return &userRepository{executor: executor}
}

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	id := uuid.NewString()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		id,
		user.Name,
		user.Email,
		user.PasswordHash,
		string(user.Role),
		time.Now(),
	).Scan(&user.CreatedAt)
	if err != nil {
		if _, ok := constraintViolation(err, pgUniqueViolation); ok {
			return domain.ErrUserExists
		}
		return err
	}

	user.ID = id
	user.UpdatedAt = nil
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.executor.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.executor.QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) SetRole(ctx context.Context, id string, role domain.Role) error {
	if !validID(id) {
		return repository.ErrNotFound
	}

	query := `
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1
	`
	return execOne(ctx, r.executor, query, id, string(role), time.Now())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var role string
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	user.Role = domain.Role(role)
	user.UpdatedAt = nullTimePtr(updatedAt)
	return user, nil
}
