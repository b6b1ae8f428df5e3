package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
)

// HabitRepo implements HabitRepository using PostgreSQL.
type HabitRepo struct{ db *DB }

// NewHabitRepo constructs a habit repository.
func NewHabitRepo(db *DB) *HabitRepo { return &HabitRepo{db: db} }

// InsertHabit stores a habit and returns its assigned id.
func (r *HabitRepo) InsertHabit(ctx context.Context, h *model.Habit) (int64, error) {
	const q = `
INSERT INTO habits (household_id, member_id, name, frequency)
VALUES ($1,$2,$3,$4)
RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, h.HouseholdID, h.MemberID, h.Name, h.Frequency).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ListHabits returns habits of a household newest first.
func (r *HabitRepo) ListHabits(ctx context.Context, householdID int64) ([]model.Habit, error) {
	const q = `
SELECT id, household_id, member_id, name, frequency, created_at
FROM habits WHERE household_id=$1 ORDER BY id DESC`
	rows, err := r.db.Pool.Query(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Habit
	for rows.Next() {
		var h model.Habit
		if err := rows.Scan(&h.ID, &h.HouseholdID, &h.MemberID, &h.Name, &h.Frequency, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// InsertLog stores a habit log entry and returns its assigned id. The insert
// is guarded by habit ownership: a habit id outside the household inserts
// nothing and reports ErrNotFound.
func (r *HabitRepo) InsertLog(ctx context.Context, householdID int64, l *model.HabitLog) (int64, error) {
	const q = `
INSERT INTO habit_logs (habit_id, member_id, log_date, status, note)
SELECT h.id, $3, $4, $5, $6
FROM habits h
WHERE h.id=$2 AND h.household_id=$1
RETURNING id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q, householdID, l.HabitID, l.MemberID, l.LogDate, l.Status, l.Note).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// ListLogs returns habit logs of a household newest date first.
func (r *HabitRepo) ListLogs(ctx context.Context, householdID int64) ([]model.HabitLog, error) {
	const q = `
SELECT l.id, l.habit_id, l.member_id, l.log_date, l.status, l.note, l.created_at
FROM habit_logs l
JOIN habits h ON h.id = l.habit_id
WHERE h.household_id=$1
ORDER BY l.log_date DESC`
	rows, err := r.db.Pool.Query(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HabitLog
	for rows.Next() {
		var l model.HabitLog
		if err := rows.Scan(&l.ID, &l.HabitID, &l.MemberID, &l.LogDate, &l.Status, &l.Note, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
