package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shelbymodels/auth-service/internal/domain"
)

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const accountColumns = `id, email, password_hash, display_name, profile_type, languages, nationality, outcall_available, incall_available, created_at`

func scanAccountRow(row *sql.Row) (accountRow, error) {
	var ar accountRow
	err := row.Scan(
		&ar.ID,
		&ar.Email,
		&ar.PasswordHash,
		&ar.DisplayName,
		&ar.ProfileType,
		&ar.Languages,
		&ar.Nationality,
		&ar.OutcallAvailable,
		&ar.IncallAvailable,
		&ar.CreatedAt,
	)
	return ar, err
}

func toDomainAccount(ar accountRow) domain.Account {
	return domain.Account{
		ID:               ar.ID,
		Email:            ar.Email,
		PasswordHash:     ar.PasswordHash,
		DisplayName:      ar.DisplayName,
		ProfileType:      ar.ProfileType,
		Languages:        ar.Languages,
		Nationality:      ar.Nationality,
		OutcallAvailable: ar.OutcallAvailable,
		IncallAvailable:  ar.IncallAvailable,
		CreatedAt:        ar.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ---------- auth.AccountRepo ----------

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT ` + accountColumns + `
FROM accounts
WHERE email = $1
LIMIT 1;
`
	ar, err := scanAccountRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return toDomainAccount(ar), nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (domain.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Account{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
LIMIT 1;
`
	ar, err := scanAccountRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrAccountNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return toDomainAccount(ar), nil
}

// Create inserts exactly one row or nothing. Uniqueness rides on the
// accounts.email unique index: concurrent inserts of the same email race
// inside Postgres, one wins, the rest surface email_already_exists.
func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	a.Email = normalizeEmail(a.Email)
	if a.ID == "" {
		return domain.Account{}, domain.ErrMissingField("id")
	}
	if a.Email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}
	if a.PasswordHash == "" {
		return domain.Account{}, domain.ErrMissingField("password_hash")
	}
	if a.ProfileType == "" {
		a.ProfileType = domain.ProfileTypeStandard
	}

	const q = `
INSERT INTO accounts (id, email, password_hash, display_name, profile_type, languages, nationality, outcall_available, incall_available)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING ` + accountColumns + `;
`

	var ar accountRow
	err := r.db.QueryRowContext(ctx, q,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, a.ProfileType,
		a.Languages, a.Nationality, a.OutcallAvailable, a.IncallAvailable,
	).Scan(
		&ar.ID,
		&ar.Email,
		&ar.PasswordHash,
		&ar.DisplayName,
		&ar.ProfileType,
		&ar.Languages,
		&ar.Nationality,
		&ar.OutcallAvailable,
		&ar.IncallAvailable,
		&ar.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrEmailAlreadyExists()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return toDomainAccount(ar), nil
}
