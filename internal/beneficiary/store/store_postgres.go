// Package store persists beneficiary registrations and profile records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"charity/internal/beneficiary/models"
	"charity/internal/platform/postgres"
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

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullable(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// --- registrations ---

const registrationColumns = `id, user_id, identification_number, beneficiary_id, phone_number, email, created_at, updated_at`

func scanRegistration(row scanner) (*models.Registration, error) {
	var r models.Registration
	var phone, email sql.NullString
	if err := row.Scan(&r.ID, &r.UserID, &r.IdentificationNumber, &r.BeneficiaryID, &phone, &email, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.PhoneNumber = fromNullable(phone)
	r.Email = fromNullable(email)
	return &r, nil
}

func (s *PostgresStore) CreateRegistration(ctx context.Context, r *models.Registration) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiaries (user_id, identification_number, beneficiary_id, phone_number, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`,
		r.UserID, r.IdentificationNumber, r.BeneficiaryID, nullable(r.PhoneNumber), nullable(r.Email), r.CreatedAt,
	).Scan(&r.ID)
	if err != nil {
		return mapWriteErr("insert beneficiary", err)
	}
	r.UpdatedAt = r.CreatedAt
	return nil
}

func (s *PostgresStore) FindRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	r, err := scanRegistration(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM beneficiaries WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find beneficiary", err)
	}
	return r, nil
}

func (s *PostgresStore) FindRegistrationByUser(ctx context.Context, userID int64) (*models.Registration, error) {
	r, err := scanRegistration(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM beneficiaries WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapReadErr("find beneficiary by user", err)
	}
	return r, nil
}

func (s *PostgresStore) UpdateRegistration(ctx context.Context, r *models.Registration) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE beneficiaries SET phone_number = $2, email = $3, updated_at = $4 WHERE id = $1`,
		r.ID, nullable(r.PhoneNumber), nullable(r.Email), r.UpdatedAt)
	if err != nil {
		return mapWriteErr("update beneficiary", err)
	}
	return requireOneRow(res)
}

// IdentityTaken reports which of the registration identifiers is already in use.
func (s *PostgresStore) IdentityTaken(ctx context.Context, identificationNumber, code string) (bool, bool, error) {
	var idTaken, codeTaken bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM beneficiaries WHERE identification_number = $1),
			EXISTS (SELECT 1 FROM beneficiaries WHERE beneficiary_id = $2)`,
		identificationNumber, code).Scan(&idTaken, &codeTaken)
	if err != nil {
		return false, false, fmt.Errorf("check beneficiary identity: %w", err)
	}
	return idTaken, codeTaken, nil
}

// ContactTaken reports whether phone or email belong to a beneficiary other than excludeID.
func (s *PostgresStore) ContactTaken(ctx context.Context, excludeID int64, phone, email *string) (bool, bool, error) {
	var phoneTaken, emailTaken bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT
			$2::text IS NOT NULL AND EXISTS (SELECT 1 FROM beneficiaries WHERE phone_number = $2 AND id <> $1),
			$3::text IS NOT NULL AND EXISTS (SELECT 1 FROM beneficiaries WHERE email = $3 AND id <> $1)`,
		excludeID, nullable(phone), nullable(email)).Scan(&phoneTaken, &emailTaken)
	if err != nil {
		return false, false, fmt.Errorf("check beneficiary contact: %w", err)
	}
	return phoneTaken, emailTaken, nil
}

func (s *PostgresStore) ListSummaries(ctx context.Context, f models.ListFilter) ([]models.Summary, int, error) {
	var (
		where []string
		args  []any
	)
	if f.IDs != nil {
		args = append(args, pq.Array(f.IDs))
		where = append(where, fmt.Sprintf("b.id = ANY($%d)", len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var count int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM beneficiaries b`+clause, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count beneficiaries: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	rows, err := s.execer(ctx).QueryContext(ctx, fmt.Sprintf(`
		SELECT b.id, b.identification_number, b.beneficiary_id, b.phone_number, b.email,
		       COALESCE(i.first_name, ''), COALESCE(i.last_name, ''), b.created_at
		FROM beneficiaries b
		LEFT JOIN beneficiary_information i ON i.beneficiary_id = b.id
		%s
		ORDER BY b.id
		LIMIT $%d OFFSET $%d`, clause, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list beneficiaries: %w", err)
	}
	defer rows.Close()
	var out []models.Summary
	for rows.Next() {
		var sm models.Summary
		var phone, email sql.NullString
		if err := rows.Scan(&sm.ID, &sm.IdentificationNumber, &sm.BeneficiaryID, &phone, &email,
			&sm.FirstName, &sm.LastName, &sm.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan beneficiary: %w", err)
		}
		sm.PhoneNumber = fromNullable(phone)
		sm.Email = fromNullable(email)
		out = append(out, sm)
	}
	return out, count, rows.Err()
}

func (s *PostgresStore) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT `+registrationColumns+` FROM beneficiaries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()
	var out []models.Registration
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// --- information ---

func (s *PostgresStore) FindInformation(ctx context.Context, beneficiaryID int64) (*models.Information, error) {
	var info models.Information
	var birth sql.NullTime
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, beneficiary_id, under_charity_support, first_name, last_name, gender, birth_date, created_at, updated_at
		FROM beneficiary_information WHERE beneficiary_id = $1`, beneficiaryID).
		Scan(&info.ID, &info.BeneficiaryID, &info.UnderCharitySupport, &info.FirstName, &info.LastName,
			&info.Gender, &birth, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return nil, mapReadErr("find information", err)
	}
	info.BirthDate = calendar.FromNull(birth)
	return &info, nil
}

func (s *PostgresStore) CreateInformation(ctx context.Context, info *models.Information) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiary_information
			(beneficiary_id, under_charity_support, first_name, last_name, gender, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id`,
		info.BeneficiaryID, info.UnderCharitySupport, info.FirstName, info.LastName, info.Gender,
		calendar.ToNull(info.BirthDate), info.CreatedAt).Scan(&info.ID)
	if err != nil {
		return mapWriteErr("insert information", err)
	}
	info.UpdatedAt = info.CreatedAt
	return nil
}

func (s *PostgresStore) UpdateInformation(ctx context.Context, info *models.Information) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE beneficiary_information
		SET under_charity_support = $2, first_name = $3, last_name = $4, gender = $5, birth_date = $6, updated_at = $7
		WHERE beneficiary_id = $1`,
		info.BeneficiaryID, info.UnderCharitySupport, info.FirstName, info.LastName, info.Gender,
		calendar.ToNull(info.BirthDate), info.UpdatedAt)
	if err != nil {
		return mapWriteErr("update information", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteInformation(ctx context.Context, beneficiaryID int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM beneficiary_information WHERE beneficiary_id = $1`, beneficiaryID)
	if err != nil {
		return fmt.Errorf("delete information: %w", err)
	}
	return requireOneRow(res)
}

// --- address ---

func (s *PostgresStore) FindAddress(ctx context.Context, beneficiaryID int64) (*models.Address, error) {
	var (
		a                   models.Address
		province, city      sql.NullInt64
		postal              sql.NullString
		longitude, latitude sql.NullFloat64
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, beneficiary_id, province_id, city_id, neighborhood, street, alley, building_number, unit,
		       postal_code, longitude, latitude, created_at, updated_at
		FROM beneficiary_addresses WHERE beneficiary_id = $1`, beneficiaryID).
		Scan(&a.ID, &a.BeneficiaryID, &province, &city, &a.Neighborhood, &a.Street, &a.Alley, &a.BuildingNumber,
			&a.Unit, &postal, &longitude, &latitude, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapReadErr("find address", err)
	}
	if province.Valid {
		a.ProvinceID = &province.Int64
	}
	if city.Valid {
		a.CityID = &city.Int64
	}
	a.PostalCode = postal.String
	if longitude.Valid {
		a.Longitude = &longitude.Float64
	}
	if latitude.Valid {
		a.Latitude = &latitude.Float64
	}
	return &a, nil
}

func addressArgs(a *models.Address) []any {
	return []any{
		a.BeneficiaryID, a.ProvinceID, a.CityID, a.Neighborhood, a.Street, a.Alley, a.BuildingNumber, a.Unit,
		postgres.NullString(a.PostalCode), a.Longitude, a.Latitude,
	}
}

func (s *PostgresStore) CreateAddress(ctx context.Context, a *models.Address) error {
	args := append(addressArgs(a), a.CreatedAt)
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiary_addresses
			(beneficiary_id, province_id, city_id, neighborhood, street, alley, building_number, unit,
			 postal_code, longitude, latitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id`, args...).Scan(&a.ID)
	if err != nil {
		return mapWriteErr("insert address", err)
	}
	a.UpdatedAt = a.CreatedAt
	return nil
}

func (s *PostgresStore) UpdateAddress(ctx context.Context, a *models.Address) error {
	args := append(addressArgs(a), a.UpdatedAt)
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE beneficiary_addresses
		SET province_id = $2, city_id = $3, neighborhood = $4, street = $5, alley = $6, building_number = $7,
		    unit = $8, postal_code = $9, longitude = $10, latitude = $11, updated_at = $12
		WHERE beneficiary_id = $1`, args...)
	if err != nil {
		return mapWriteErr("update address", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteAddress(ctx context.Context, beneficiaryID int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM beneficiary_addresses WHERE beneficiary_id = $1`, beneficiaryID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return requireOneRow(res)
}

// --- additional info ---

const additionalInfoColumns = `id, beneficiary_id, title, description, document, is_created_by_charity, created_at, updated_at`

func scanAdditionalInfo(row scanner) (*models.AdditionalInfo, error) {
	var a models.AdditionalInfo
	if err := row.Scan(&a.ID, &a.BeneficiaryID, &a.Title, &a.Description, &a.Document, &a.IsCreatedByCharity,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAdditionalInfo lists a beneficiary's entries; charity-created ones only when includeCharity is set.
func (s *PostgresStore) ListAdditionalInfo(ctx context.Context, beneficiaryID int64, includeCharity bool) ([]models.AdditionalInfo, error) {
	query := `SELECT ` + additionalInfoColumns + ` FROM beneficiary_additional_info WHERE beneficiary_id = $1`
	if !includeCharity {
		query += ` AND NOT is_created_by_charity`
	}
	rows, err := s.execer(ctx).QueryContext(ctx, query+` ORDER BY id`, beneficiaryID)
	if err != nil {
		return nil, fmt.Errorf("list additional info: %w", err)
	}
	defer rows.Close()
	var out []models.AdditionalInfo
	for rows.Next() {
		a, err := scanAdditionalInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan additional info: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) FindAdditionalInfo(ctx context.Context, id int64) (*models.AdditionalInfo, error) {
	a, err := scanAdditionalInfo(s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+additionalInfoColumns+` FROM beneficiary_additional_info WHERE id = $1`, id))
	if err != nil {
		return nil, mapReadErr("find additional info", err)
	}
	return a, nil
}

func (s *PostgresStore) CreateAdditionalInfo(ctx context.Context, a *models.AdditionalInfo) error {
	err := s.execer(ctx).QueryRowContext(ctx, `
		INSERT INTO beneficiary_additional_info
			(beneficiary_id, title, description, document, is_created_by_charity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`,
		a.BeneficiaryID, a.Title, a.Description, a.Document, a.IsCreatedByCharity, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return mapWriteErr("insert additional info", err)
	}
	a.UpdatedAt = a.CreatedAt
	return nil
}

func (s *PostgresStore) UpdateAdditionalInfo(ctx context.Context, a *models.AdditionalInfo) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE beneficiary_additional_info
		SET title = $2, description = $3, document = $4, is_created_by_charity = $5, updated_at = $6
		WHERE id = $1`,
		a.ID, a.Title, a.Description, a.Document, a.IsCreatedByCharity, a.UpdatedAt)
	if err != nil {
		return mapWriteErr("update additional info", err)
	}
	return requireOneRow(res)
}

func (s *PostgresStore) DeleteAdditionalInfo(ctx context.Context, id int64) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM beneficiary_additional_info WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete additional info: %w", err)
	}
	return requireOneRow(res)
}
