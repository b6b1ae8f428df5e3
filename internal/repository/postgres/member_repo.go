package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
)

// MemberRepo implements MemberRepository using PostgreSQL.
type MemberRepo struct{ db *DB }

// NewMemberRepo constructs a member repository.
func NewMemberRepo(db *DB) *MemberRepo { return &MemberRepo{db: db} }

const memberColumns = `id, household_id, name, avatar_color, avatar_path, created_at`

// Insert stores a member and returns its assigned id.
func (r *MemberRepo) Insert(ctx context.Context, m *model.Member) (int64, error) {
	const q = `
INSERT INTO members (household_id, name, avatar_color)
VALUES ($1,$2,$3)
RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, m.HouseholdID, m.Name, m.AvatarColor).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID selects a member by id.
func (r *MemberRepo) GetByID(ctx context.Context, householdID, id int64) (*model.Member, error) {
	q := `SELECT ` + memberColumns + ` FROM members WHERE household_id=$1 AND id=$2`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, householdID, id))
}

// ListByHousehold returns members newest first.
func (r *MemberRepo) ListByHousehold(ctx context.Context, householdID int64) ([]model.Member, error) {
	q := `SELECT ` + memberColumns + ` FROM members WHERE household_id=$1 ORDER BY id DESC`
	rows, err := r.db.Pool.Query(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.AvatarColor, &m.AvatarPath, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update rewrites name, avatar color and avatar path, keeping stored values for nil fields.
func (r *MemberRepo) Update(ctx context.Context, householdID, id int64, name, avatarColor, avatarPath *string) (*model.Member, error) {
	q := `
UPDATE members
SET name = COALESCE($3, name), avatar_color = COALESCE($4, avatar_color), avatar_path = COALESCE($5, avatar_path)
WHERE household_id = $1 AND id = $2
RETURNING ` + memberColumns
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, householdID, id, name, avatarColor, avatarPath))
}

// DeleteByID removes a member row.
func (r *MemberRepo) DeleteByID(ctx context.Context, householdID, id int64) error {
	const q = `DELETE FROM members WHERE household_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, householdID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *MemberRepo) scanOne(row pgx.Row) (*model.Member, error) {
	var m model.Member
	err := row.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.AvatarColor, &m.AvatarPath, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
