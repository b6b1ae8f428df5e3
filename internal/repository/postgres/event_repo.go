package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

const eventColumns = `id, household_id, member_id, title, start_at, end_at, note, series_id, recurrence_rule, recurrence_until, created_at`

const insertEventSQL = `
INSERT INTO events (household_id, member_id, title, start_at, end_at, note, series_id, recurrence_rule, recurrence_until)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id`

// Insert stores a single event and returns its assigned id.
func (r *EventRepo) Insert(ctx context.Context, ev *model.Event) (int64, error) {
	rule, err := marshalRule(ev.Recurrence)
	if err != nil {
		return 0, err
	}
	var id int64
	err = r.db.Pool.QueryRow(ctx, insertEventSQL,
		ev.HouseholdID, ev.MemberID, ev.Title, ev.StartAt, ev.EndAt, ev.Note,
		ev.SeriesID, rule, ev.RecurrenceUntil,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertBatch stores all events in one transaction, in input order.
func (r *EventRepo) InsertBatch(ctx context.Context, evs []model.Event) (ids []int64, err error) {
	if len(evs) == 0 {
		return []int64{}, nil
	}
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	ids = make([]int64, 0, len(evs))
	for i := range evs {
		ev := &evs[i]
		rule, merr := marshalRule(ev.Recurrence)
		if merr != nil {
			return nil, fmt.Errorf("event[%d]: %w", i, merr)
		}
		var id int64
		if err = tx.QueryRow(ctx, insertEventSQL,
			ev.HouseholdID, ev.MemberID, ev.Title, ev.StartAt, ev.EndAt, ev.Note,
			ev.SeriesID, rule, ev.RecurrenceUntil,
		).Scan(&id); err != nil {
			return nil, fmt.Errorf("event[%d]: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepo) GetByID(ctx context.Context, householdID, id int64) (*model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE household_id=$1 AND id=$2`
	ev, err := scanEvent(r.db.Pool.QueryRow(ctx, q, householdID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

// ListByHousehold returns all events of a household ordered by start time.
func (r *EventRepo) ListByHousehold(ctx context.Context, householdID int64) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE household_id=$1 ORDER BY start_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// ListBySeriesID returns all events sharing a series id ordered by start time.
func (r *EventRepo) ListBySeriesID(ctx context.Context, householdID int64, seriesID string) ([]model.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE household_id=$1 AND series_id=$2 ORDER BY start_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, householdID, seriesID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

// Update rewrites all mutable fields of an event row.
func (r *EventRepo) Update(ctx context.Context, ev *model.Event) error {
	rule, err := marshalRule(ev.Recurrence)
	if err != nil {
		return err
	}
	const q = `
UPDATE events
SET member_id=$3, title=$4, start_at=$5, end_at=$6, note=$7, series_id=$8, recurrence_rule=$9, recurrence_until=$10
WHERE household_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q,
		ev.HouseholdID, ev.ID, ev.MemberID, ev.Title, ev.StartAt, ev.EndAt, ev.Note,
		ev.SeriesID, rule, ev.RecurrenceUntil,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteByID removes a single event; removing an unknown id is a no-op.
func (r *EventRepo) DeleteByID(ctx context.Context, householdID, id int64) error {
	const q = `DELETE FROM events WHERE household_id=$1 AND id=$2`
	_, err := r.db.Pool.Exec(ctx, q, householdID, id)
	return err
}

// DeleteBySeriesID removes every event sharing seriesID, optionally keeping excludeID.
func (r *EventRepo) DeleteBySeriesID(ctx context.Context, householdID int64, seriesID string, excludeID *int64) error {
	if excludeID != nil {
		const q = `DELETE FROM events WHERE household_id=$1 AND series_id=$2 AND id<>$3`
		_, err := r.db.Pool.Exec(ctx, q, householdID, seriesID, *excludeID)
		return err
	}
	const q = `DELETE FROM events WHERE household_id=$1 AND series_id=$2`
	_, err := r.db.Pool.Exec(ctx, q, householdID, seriesID)
	return err
}

// marshalRule serializes a recurrence rule to its JSONB column value.
// A nil rule maps to NULL.
func marshalRule(rule *model.RecurrenceRule) ([]byte, error) {
	if rule == nil {
		return nil, nil
	}
	return json.Marshal(rule)
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var (
		ev   model.Event
		rule []byte
	)
	err := row.Scan(
		&ev.ID, &ev.HouseholdID, &ev.MemberID, &ev.Title, &ev.StartAt, &ev.EndAt,
		&ev.Note, &ev.SeriesID, &rule, &ev.RecurrenceUntil, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		var r model.RecurrenceRule
		if err := json.Unmarshal(rule, &r); err != nil {
			return nil, fmt.Errorf("decode recurrence rule: %w", err)
		}
		ev.Recurrence = &r
	}
	return &ev, nil
}

func collectEvents(rows pgx.Rows) ([]model.Event, error) {
	defer rows.Close()
	var out []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ev)
	}
	return out, rows.Err()
}
