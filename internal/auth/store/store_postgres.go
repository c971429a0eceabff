// Package store persists login accounts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charity/internal/auth/models"
	"charity/internal/platform/postgres"
	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
	"charity/pkg/requestcontext"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const userColumns = `id, username, password_hash, role, is_active, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = requestcontext.Role(role)
	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`,
		u.Username, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.UpdatedAt = u.CreatedAt
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(s.execer(ctx).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(s.execer(ctx).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (s *PostgresStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return taken, nil
}

// Update writes username, password hash and active flag.
func (s *PostgresStore) Update(ctx context.Context, u *models.User) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE users SET username = $2, password_hash = $3, is_active = $4, updated_at = $5 WHERE id = $1`,
		u.ID, u.Username, u.PasswordHash, u.IsActive, u.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
