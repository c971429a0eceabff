package charity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
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

const charityColumns = `id, user_id, name, phone, email, created_at, updated_at`

func scanCharity(row interface{ Scan(...any) error }) (*Charity, error) {
	var c Charity
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) Create(ctx context.Context, c *Charity) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO charities (user_id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`, c.UserID, c.Name, c.Phone, c.Email, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert charity: %w", err)
	}
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*Charity, error) {
	c, err := scanCharity(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+charityColumns+` FROM charities WHERE id = $1`, id))
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("find charity: %w", err)
	}
	return c, err
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID int64) (*Charity, error) {
	c, err := scanCharity(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+charityColumns+` FROM charities WHERE user_id = $1`, userID))
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("find charity by user: %w", err)
	}
	return c, err
}

func (s *PostgresStore) Update(ctx context.Context, c *Charity) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE charities SET name = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $1`, c.ID, c.Name, c.Phone, c.Email, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update charity: %w", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) ListWorkfields(ctx context.Context, charityID int64) ([]Workfield, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, charity_id, title, description, created_at
		FROM charity_workfields WHERE charity_id = $1 ORDER BY id`, charityID)
	if err != nil {
		return nil, fmt.Errorf("list workfields: %w", err)
	}
	defer rows.Close()
	var out []Workfield
	for rows.Next() {
		var w Workfield
		if err := rows.Scan(&w.ID, &w.CharityID, &w.Title, &w.Description, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workfield: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateWorkfield(ctx context.Context, w *Workfield) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO charity_workfields (charity_id, title, description, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`, w.CharityID, w.Title, w.Description, w.CreatedAt).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert workfield: %w", err)
	}
	return nil
}

// DeleteWorkfield removes the workfield only if it belongs to charityID.
func (s *PostgresStore) DeleteWorkfield(ctx context.Context, charityID, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM charity_workfields WHERE id = $1 AND charity_id = $2`, id, charityID)
	if err != nil {
		return fmt.Errorf("delete workfield: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
