package postgres

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// MediaLogRepo implements MediaLogRepository using PostgreSQL.
type MediaLogRepo struct{ db *DB }

// NewMediaLogRepo constructs a media log repository.
func NewMediaLogRepo(db *DB) *MediaLogRepo { return &MediaLogRepo{db: db} }

// Insert stores a media log entry and returns its assigned id.
func (r *MediaLogRepo) Insert(ctx context.Context, l *model.MediaLog) (int64, error) {
	const q = `
INSERT INTO media_logs (household_id, member_id, log_date, media_type, file_path, note, duration_sec)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id`
	var id int64
	err := r.db.Pool.QueryRow(ctx, q,
		l.HouseholdID, l.MemberID, l.LogDate, l.MediaType, l.FilePath, l.Note, l.DurationSec,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByHousehold returns media logs newest date first.
func (r *MediaLogRepo) ListByHousehold(ctx context.Context, householdID int64) ([]model.MediaLog, error) {
	const q = `
SELECT id, household_id, member_id, log_date, media_type, file_path, note, duration_sec, created_at
FROM media_logs WHERE household_id=$1 ORDER BY log_date DESC`
	rows, err := r.db.Pool.Query(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MediaLog
	for rows.Next() {
		var l model.MediaLog
		if err := rows.Scan(&l.ID, &l.HouseholdID, &l.MemberID, &l.LogDate, &l.MediaType, &l.FilePath, &l.Note, &l.DurationSec, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
