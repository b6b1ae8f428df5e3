package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
)

// HouseholdRepo implements HouseholdRepository using PostgreSQL.
type HouseholdRepo struct{ db *DB }

// NewHouseholdRepo constructs a household repository.
func NewHouseholdRepo(db *DB) *HouseholdRepo { return &HouseholdRepo{db: db} }

const householdColumns = `id, name, default_language, username, pwd_hash, salt_auth, created_at`

// Create inserts a new household row.
func (r *HouseholdRepo) Create(ctx context.Context, h *model.Household) (int64, error) {
	const q = `
INSERT INTO households (name, default_language, username, pwd_hash, salt_auth)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q, h.Name, h.DefaultLanguage, h.Username, h.PwdHash, h.SaltAuth).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errs.ErrAlreadyExists
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID selects a household by ID.
func (r *HouseholdRepo) GetByID(ctx context.Context, id int64) (*model.Household, error) {
	q := `SELECT ` + householdColumns + ` FROM households WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects a household by login name.
func (r *HouseholdRepo) GetByUsername(ctx context.Context, username string) (*model.Household, error) {
	q := `SELECT ` + householdColumns + ` FROM households WHERE username=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, username))
}

// UpdateProfile updates name and default language, keeping stored values for nil fields.
func (r *HouseholdRepo) UpdateProfile(ctx context.Context, id int64, name, defaultLanguage *string) (*model.Household, error) {
	q := `
UPDATE households
SET name = COALESCE($2, name), default_language = COALESCE($3, default_language)
WHERE id = $1
RETURNING ` + householdColumns
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id, name, defaultLanguage))
}

func (r *HouseholdRepo) scanOne(row pgx.Row) (*model.Household, error) {
	var h model.Household
	err := row.Scan(&h.ID, &h.Name, &h.DefaultLanguage, &h.Username, &h.PwdHash, &h.SaltAuth, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}
