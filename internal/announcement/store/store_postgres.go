// Package store persists request and beneficiary announcements.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"charity/internal/announcement/models"
	"charity/internal/platform/postgres"
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

type scanner interface {
	Scan(dest ...any) error
}

func mapWriteErr(op string, err error) error {
	if postgres.IsForeignKeyViolation(err) {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
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

// --- request announcements ---

const forRequestSelect = `
	SELECT a.id, a.request_id, r.beneficiary_id, a.charity_id, a.title, a.description, a.seen, a.created_at
	FROM request_announcements a
	JOIN beneficiary_requests r ON r.id = a.request_id`

func scanForRequest(row scanner) (*models.ForRequest, error) {
	var a models.ForRequest
	err := row.Scan(&a.ID, &a.RequestID, &a.BeneficiaryID, &a.CharityID, &a.Title, &a.Description, &a.Seen, &a.CreatedAt)
	return &a, err
}

func (s *PostgresStore) listForRequest(ctx context.Context, op, where string, args ...any) ([]models.ForRequest, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, forRequestSelect+` WHERE `+where+` ORDER BY a.created_at DESC, a.id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []models.ForRequest
	for rows.Next() {
		a, err := scanForRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateForRequest(ctx context.Context, a *models.ForRequest) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO request_announcements (request_id, charity_id, title, description, seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, a.RequestID, a.CharityID, a.Title, a.Description, a.Seen, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return mapWriteErr("insert request announcement", err)
	}
	return nil
}

func (s *PostgresStore) FindForRequest(ctx context.Context, id int64) (*models.ForRequest, error) {
	a, err := scanForRequest(s.execer(ctx).QueryRowContext(ctx, forRequestSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find request announcement: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) UpdateForRequest(ctx context.Context, a *models.ForRequest) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE request_announcements SET title = $2, description = $3, seen = $4
		WHERE id = $1`, a.ID, a.Title, a.Description, a.Seen)
	if err != nil {
		return fmt.Errorf("update request announcement: %w", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteForRequest(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM request_announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request announcement: %w", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) ListForRequest(ctx context.Context, requestID int64) ([]models.ForRequest, error) {
	return s.listForRequest(ctx, "list request announcements", `a.request_id = $1`, requestID)
}

// ListUnseenForRequests lists unseen announcements on a beneficiary's requests created since.
func (s *PostgresStore) ListUnseenForRequests(ctx context.Context, beneficiaryID int64, since time.Time) ([]models.ForRequest, error) {
	return s.listForRequest(ctx, "list unseen request announcements",
		`r.beneficiary_id = $1 AND NOT a.seen AND a.created_at >= $2`, beneficiaryID, since)
}

// --- beneficiary announcements ---

const toBeneficiaryColumns = `id, beneficiary_id, charity_id, title, description, seen, created_at`

func scanToBeneficiary(row scanner) (*models.ToBeneficiary, error) {
	var a models.ToBeneficiary
	err := row.Scan(&a.ID, &a.BeneficiaryID, &a.CharityID, &a.Title, &a.Description, &a.Seen, &a.CreatedAt)
	return &a, err
}

func (s *PostgresStore) listToBeneficiary(ctx context.Context, op, where string, args ...any) ([]models.ToBeneficiary, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT `+toBeneficiaryColumns+` FROM beneficiary_announcements
		WHERE `+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []models.ToBeneficiary
	for rows.Next() {
		a, err := scanToBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateToBeneficiary(ctx context.Context, a *models.ToBeneficiary) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiary_announcements (beneficiary_id, charity_id, title, description, seen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, a.BeneficiaryID, a.CharityID, a.Title, a.Description, a.Seen, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return mapWriteErr("insert beneficiary announcement", err)
	}
	return nil
}

func (s *PostgresStore) FindToBeneficiary(ctx context.Context, id int64) (*models.ToBeneficiary, error) {
	a, err := scanToBeneficiary(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+toBeneficiaryColumns+` FROM beneficiary_announcements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find beneficiary announcement: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) MarkToBeneficiarySeen(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `UPDATE beneficiary_announcements SET seen = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark beneficiary announcement seen: %w", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) ListToBeneficiary(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error) {
	return s.listToBeneficiary(ctx, "list beneficiary announcements", `beneficiary_id = $1`, beneficiaryID)
}

func (s *PostgresStore) ListUnseenToBeneficiary(ctx context.Context, beneficiaryID int64, since time.Time) ([]models.ToBeneficiary, error) {
	return s.listToBeneficiary(ctx, "list unseen beneficiary announcements",
		`beneficiary_id = $1 AND NOT seen AND created_at >= $2`, beneficiaryID, since)
}
