// Package repository defines storage interfaces implemented by the postgres package.
package repository

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// EventRepository provides household-scoped access to calendar events.
type EventRepository interface {
	// Insert stores a single event and returns its assigned id.
	Insert(ctx context.Context, ev *model.Event) (int64, error)

	// InsertBatch stores all events in one transaction and returns their ids
	// in input order. Used for materialized series occurrences so a
	// generation run lands atomically.
	InsertBatch(ctx context.Context, evs []model.Event) ([]int64, error)

	// GetByID returns a single event or ErrNotFound.
	GetByID(ctx context.Context, householdID, id int64) (*model.Event, error)

	// ListByHousehold returns all events of a household ordered by start time.
	ListByHousehold(ctx context.Context, householdID int64) ([]model.Event, error)

	// ListBySeriesID returns all events sharing a series id ordered by start time.
	ListBySeriesID(ctx context.Context, householdID int64, seriesID string) ([]model.Event, error)

	// Update rewrites all mutable fields of an event row.
	Update(ctx context.Context, ev *model.Event) error

	// DeleteByID removes a single event; removing an unknown id is a no-op.
	DeleteByID(ctx context.Context, householdID, id int64) error

	// DeleteBySeriesID removes every event sharing seriesID, optionally
	// keeping the row with excludeID.
	DeleteBySeriesID(ctx context.Context, householdID int64, seriesID string, excludeID *int64) error
}
