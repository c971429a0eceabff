// Package store persists requests, their type taxonomy and sub-records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"charity/internal/platform/postgres"
	"charity/internal/request/models"
	"charity/pkg/calendar"
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
	if postgres.IsUniqueViolation(err) {
		return sentinel.ErrConflict
	}
	if postgres.IsForeignKeyViolation(err) {
		return sentinel.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func mapReadErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
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

// queryAll runs q and scans every row with scan.
func queryAll[T any](ctx context.Context, db dbExecutor, op string, scan func(scanner) (*T, error), q string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// --- taxonomy ---

func scanLayer1(row scanner) (*models.Layer1, error) {
	var l models.Layer1
	return &l, row.Scan(&l.ID, &l.Name)
}

func scanLayer2(row scanner) (*models.Layer2, error) {
	var l models.Layer2
	return &l, row.Scan(&l.ID, &l.Name, &l.Layer1ID)
}

func (s *PostgresStore) ListLayer1(ctx context.Context) ([]models.Layer1, error) {
	return queryAll(ctx, s.execer(ctx), "list layer1", scanLayer1, `SELECT id, name FROM request_type_layer1 ORDER BY id`)
}

func (s *PostgresStore) FindLayer1(ctx context.Context, id int64) (*models.Layer1, error) {
	l, err := scanLayer1(s.execer(ctx).QueryRowContext(ctx, `SELECT id, name FROM request_type_layer1 WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find layer1", err)
	}
	return l, nil
}

// ListLayer2 lists second-level types, all of them when layer1ID is zero.
func (s *PostgresStore) ListLayer2(ctx context.Context, layer1ID int64) ([]models.Layer2, error) {
	return queryAll(ctx, s.execer(ctx), "list layer2", scanLayer2, `
		SELECT id, name, layer1_id FROM request_type_layer2
		WHERE $1::bigint = 0 OR layer1_id = $1
		ORDER BY id`, layer1ID)
}

func (s *PostgresStore) FindLayer2(ctx context.Context, id int64) (*models.Layer2, error) {
	l, err := scanLayer2(s.execer(ctx).QueryRowContext(ctx, `SELECT id, name, layer1_id FROM request_type_layer2 WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find layer2", err)
	}
	return l, nil
}

func (s *PostgresStore) CreateLayer2(ctx context.Context, l *models.Layer2) error {
	err := s.execer(ctx).QueryRowContext(ctx,
		`INSERT INTO request_type_layer2 (name, layer1_id) VALUES ($1, $2) RETURNING id`,
		l.Name, l.Layer1ID).Scan(&l.ID)
	if err != nil {
		return mapWriteErr("insert layer2", err)
	}
	return nil
}

// --- requests ---

const requestColumns = `id, beneficiary_id, charity_id, layer1_id, layer2_id, title, description, duration,
	document, processing_stage, request_date, request_time, is_created_by_charity, created_at, updated_at`

func scanRequest(row scanner) (*models.Request, error) {
	var r models.Request
	var date sql.NullTime
	if err := row.Scan(&r.ID, &r.BeneficiaryID, &r.CharityID, &r.Layer1ID, &r.Layer2ID, &r.Title, &r.Description,
		&r.Duration, &r.Document, &r.Stage, &date, &r.Time, &r.IsCreatedByCharity, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Date = calendar.FromNull(date)
	r.SetEffectiveDate()
	return &r, nil
}

func (s *PostgresStore) Create(ctx context.Context, r *models.Request) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiary_requests (beneficiary_id, charity_id, layer1_id, layer2_id, title, description, duration,
			document, processing_stage, request_date, request_time, is_created_by_charity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id`,
		r.BeneficiaryID, r.CharityID, r.Layer1ID, r.Layer2ID, r.Title, r.Description, r.Duration,
		r.Document, r.Stage, calendar.ToNull(r.Date), r.Time, r.IsCreatedByCharity, r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return mapWriteErr("insert request", err)
	}
	r.UpdatedAt = r.CreatedAt
	r.SetEffectiveDate()
	return nil
}

func (s *PostgresStore) Find(ctx context.Context, id int64) (*models.Request, error) {
	r, err := scanRequest(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM beneficiary_requests WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find request", err)
	}
	return r, nil
}

func (s *PostgresStore) Update(ctx context.Context, r *models.Request) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE beneficiary_requests SET charity_id = $2, layer1_id = $3, layer2_id = $4, title = $5, description = $6,
			duration = $7, document = $8, processing_stage = $9, request_date = $10, request_time = $11, updated_at = $12
		WHERE id = $1`,
		r.ID, r.CharityID, r.Layer1ID, r.Layer2ID, r.Title, r.Description,
		r.Duration, r.Document, r.Stage, calendar.ToNull(r.Date), r.Time, r.UpdatedAt)
	if err != nil {
		return mapWriteErr("update request", err)
	}
	if err := requireOneRow(res); err != nil {
		return err
	}
	r.SetEffectiveDate()
	return nil
}

// Delete removes the request; sub-records and request announcements cascade.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM beneficiary_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) List(ctx context.Context, f models.ListFilter) ([]models.Request, int, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.BeneficiaryID != 0 {
		add("beneficiary_id = $%d", f.BeneficiaryID)
	}
	if f.CharityID != 0 {
		add("charity_id = $%d", f.CharityID)
	}
	if f.Stages != nil {
		add("processing_stage = ANY($%d)", pq.Array(f.Stages))
	}
	if f.Durations != nil {
		add("duration = ANY($%d)", pq.Array(f.Durations))
	}
	if f.IDs != nil {
		add("id = ANY($%d)", pq.Array(f.IDs))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var count int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM beneficiary_requests`+clause, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	order := "id DESC"
	switch f.Ordering {
	case models.OrderEffectiveAsc:
		order = "COALESCE(request_date, created_at::date), id"
	case models.OrderEffectiveDesc:
		order = "COALESCE(request_date, created_at::date) DESC, id DESC"
	}
	args = append(args, f.Limit, f.Offset)
	out, err := queryAll(ctx, s.execer(ctx), "list requests", scanRequest, fmt.Sprintf(
		`SELECT `+requestColumns+` FROM beneficiary_requests%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		clause, order, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	return out, count, nil
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]models.Request, error) {
	return queryAll(ctx, s.execer(ctx), "list all requests", scanRequest,
		`SELECT `+requestColumns+` FROM beneficiary_requests ORDER BY id`)
}

// --- duration extensions ---

func scanOnetime(row scanner) (*models.Onetime, error) {
	var o models.Onetime
	var deadline sql.NullTime
	if err := row.Scan(&o.ID, &o.RequestID, &deadline, &o.IsCreatedByCharity, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Deadline = calendar.FromNull(deadline)
	return &o, nil
}

func (s *PostgresStore) FindOnetime(ctx context.Context, requestID int64) (*models.Onetime, error) {
	o, err := scanOnetime(s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, request_id, deadline, is_created_by_charity, created_at
		FROM request_onetime WHERE request_id = $1`, requestID))
	if err != nil {
		return nil, mapReadErr("find onetime", err)
	}
	return o, nil
}

func (s *PostgresStore) CreateOnetime(ctx context.Context, o *models.Onetime) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO request_onetime (request_id, deadline, is_created_by_charity, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		o.RequestID, calendar.ToNull(o.Deadline), o.IsCreatedByCharity, o.CreatedAt).Scan(&o.ID)
	if err != nil {
		return mapWriteErr("insert onetime", err)
	}
	return nil
}

func (s *PostgresStore) UpdateOnetime(ctx context.Context, o *models.Onetime) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE request_onetime SET deadline = $2 WHERE request_id = $1`, o.RequestID, calendar.ToNull(o.Deadline))
	if err != nil {
		return mapWriteErr("update onetime", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteOnetime(ctx context.Context, requestID int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM request_onetime WHERE request_id = $1`, requestID)
	if err != nil {
		return fmt.Errorf("delete onetime: %w", err)
	}
	return requireOneRow(res)
}

func scanRecurring(row scanner) (*models.Recurring, error) {
	var r models.Recurring
	return &r, row.Scan(&r.ID, &r.RequestID, &r.Limit, &r.IsCreatedByCharity, &r.CreatedAt)
}

func (s *PostgresStore) FindRecurring(ctx context.Context, requestID int64) (*models.Recurring, error) {
	r, err := scanRecurring(s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, request_id, recurring_limit, is_created_by_charity, created_at
		FROM request_recurring WHERE request_id = $1`, requestID))
	if err != nil {
		return nil, mapReadErr("find recurring", err)
	}
	return r, nil
}

func (s *PostgresStore) CreateRecurring(ctx context.Context, r *models.Recurring) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO request_recurring (request_id, recurring_limit, is_created_by_charity, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		r.RequestID, r.Limit, r.IsCreatedByCharity, r.CreatedAt).Scan(&r.ID)
	if err != nil {
		return mapWriteErr("insert recurring", err)
	}
	return nil
}

func (s *PostgresStore) UpdateRecurring(ctx context.Context, r *models.Recurring) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE request_recurring SET recurring_limit = $2 WHERE request_id = $1`, r.RequestID, r.Limit)
	if err != nil {
		return mapWriteErr("update recurring", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteRecurring(ctx context.Context, requestID int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM request_recurring WHERE request_id = $1`, requestID)
	if err != nil {
		return fmt.Errorf("delete recurring: %w", err)
	}
	return requireOneRow(res)
}

// --- histories ---

const historyColumns = `id, request_id, title, description, document, history_date, history_time, created_at`

func scanHistory(row scanner) (*models.History, error) {
	var h models.History
	var date sql.NullTime
	if err := row.Scan(&h.ID, &h.RequestID, &h.Title, &h.Description, &h.Document, &date, &h.Time, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.Date = calendar.FromNull(date)
	return &h, nil
}

func (s *PostgresStore) ListHistories(ctx context.Context, requestID int64) ([]models.History, error) {
	return queryAll(ctx, s.execer(ctx), "list histories", scanHistory,
		`SELECT `+historyColumns+` FROM request_histories WHERE request_id = $1 ORDER BY id`, requestID)
}

func (s *PostgresStore) FindHistory(ctx context.Context, id int64) (*models.History, error) {
	h, err := scanHistory(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM request_histories WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find history", err)
	}
	return h, nil
}

func (s *PostgresStore) CreateHistory(ctx context.Context, h *models.History) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO request_histories (request_id, title, description, document, history_date, history_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		h.RequestID, h.Title, h.Description, h.Document, calendar.ToNull(h.Date), h.Time, h.CreatedAt).Scan(&h.ID)
	if err != nil {
		return mapWriteErr("insert history", err)
	}
	return nil
}

func (s *PostgresStore) UpdateHistory(ctx context.Context, h *models.History) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE request_histories SET title = $2, description = $3, document = $4, history_date = $5, history_time = $6
		WHERE id = $1`,
		h.ID, h.Title, h.Description, h.Document, calendar.ToNull(h.Date), h.Time)
	if err != nil {
		return mapWriteErr("update history", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteHistory(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM request_histories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return requireOneRow(res)
}

// --- children ---

const childColumns = `id, request_id, description, document, processing_stage, child_date, child_time,
	is_created_by_charity, created_at, updated_at`

func scanChild(row scanner) (*models.Child, error) {
	var c models.Child
	var date sql.NullTime
	if err := row.Scan(&c.ID, &c.RequestID, &c.Description, &c.Document, &c.Stage, &date, &c.Time,
		&c.IsCreatedByCharity, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Date = calendar.FromNull(date)
	return &c, nil
}

func (s *PostgresStore) ListChildren(ctx context.Context, requestID int64) ([]models.Child, error) {
	return queryAll(ctx, s.execer(ctx), "list children", scanChild,
		`SELECT `+childColumns+` FROM request_children WHERE request_id = $1 ORDER BY id`, requestID)
}

func (s *PostgresStore) FindChild(ctx context.Context, id int64) (*models.Child, error) {
	c, err := scanChild(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+childColumns+` FROM request_children WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find child", err)
	}
	return c, nil
}

func (s *PostgresStore) CreateChild(ctx context.Context, c *models.Child) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO request_children (request_id, description, document, processing_stage, child_date, child_time,
			is_created_by_charity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`,
		c.RequestID, c.Description, c.Document, c.Stage, calendar.ToNull(c.Date), c.Time,
		c.IsCreatedByCharity, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return mapWriteErr("insert child", err)
	}
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (s *PostgresStore) UpdateChild(ctx context.Context, c *models.Child) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE request_children SET description = $2, document = $3, processing_stage = $4, child_date = $5,
			child_time = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Description, c.Document, c.Stage, calendar.ToNull(c.Date), c.Time, c.UpdatedAt)
	if err != nil {
		return mapWriteErr("update child", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteChild(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM request_children WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	return requireOneRow(res)
}
