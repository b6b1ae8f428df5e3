package repository

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// HabitRepository stores habits and their dated logs.
type HabitRepository interface {
	// InsertHabit stores a habit and returns its assigned id.
	InsertHabit(ctx context.Context, h *model.Habit) (int64, error)

	// ListHabits returns habits of a household newest first.
	ListHabits(ctx context.Context, householdID int64) ([]model.Habit, error)

	// InsertLog stores a habit log entry and returns its assigned id.
	// ErrNotFound when the habit does not belong to the household.
	InsertLog(ctx context.Context, householdID int64, l *model.HabitLog) (int64, error)

	// ListLogs returns habit logs of a household newest date first.
	ListLogs(ctx context.Context, householdID int64) ([]model.HabitLog, error)
}
