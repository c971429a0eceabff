package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
)

// PostgresStore persists provinces and cities in PostgreSQL.
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

func (s *PostgresStore) ListProvinces(ctx context.Context) ([]Province, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT id, name FROM provinces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()
	var out []Province
	for rows.Next() {
		var p Province
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan province: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListCities(ctx context.Context, provinceID int64) ([]City, error) {
	query := `SELECT id, province_id, name FROM cities`
	var args []any
	if provinceID > 0 {
		query += ` WHERE province_id = $1`
		args = append(args, provinceID)
	}
	query += ` ORDER BY name`
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()
	var out []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.ProvinceID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) FindProvince(ctx context.Context, id int64) (*Province, error) {
	var p Province
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT id, name FROM provinces WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find province: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) FindCity(ctx context.Context, id int64) (*City, error) {
	var c City
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT id, province_id, name FROM cities WHERE id = $1`, id).
		Scan(&c.ID, &c.ProvinceID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find city: %w", err)
	}
	return &c, nil
}

// EnsureProvince returns the province named name, creating it if missing.
func (s *PostgresStore) EnsureProvince(ctx context.Context, name string) (*Province, bool, error) {
	var p Province
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO provinces (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`, name).Scan(&p.ID, &p.Name)
	if err == nil {
		return &p, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("insert province: %w", err)
	}
	err = s.execer(ctx).QueryRowContext(ctx, `SELECT id, name FROM provinces WHERE name = $1`, name).Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, false, fmt.Errorf("select province: %w", err)
	}
	return &p, false, nil
}

// EnsureCity returns the city named name in the province, creating it if missing.
func (s *PostgresStore) EnsureCity(ctx context.Context, provinceID int64, name string) (*City, bool, error) {
	var c City
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO cities (province_id, name) VALUES ($1, $2)
		ON CONFLICT (province_id, name) DO NOTHING
		RETURNING id, province_id, name`, provinceID, name).Scan(&c.ID, &c.ProvinceID, &c.Name)
	if err == nil {
		return &c, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("insert city: %w", err)
	}
	err = s.execer(ctx).QueryRowContext(ctx,
		`SELECT id, province_id, name FROM cities WHERE province_id = $1 AND name = $2`, provinceID, name).
		Scan(&c.ID, &c.ProvinceID, &c.Name)
	if err != nil {
		return nil, false, fmt.Errorf("select city: %w", err)
	}
	return &c, false, nil
}
