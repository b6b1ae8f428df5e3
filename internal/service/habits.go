package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// HabitService manages habits and their dated logs.
type HabitService interface {
	// CreateHabit stores a new habit.
	CreateHabit(ctx context.Context, householdID int64, memberID *int64, name, frequency string) (*model.Habit, error)
	// ListHabits returns habits newest first.
	ListHabits(ctx context.Context, householdID int64) ([]model.Habit, error)
	// CreateLog stores a dated habit check-in against one of the
	// household's own habits.
	CreateLog(ctx context.Context, householdID, habitID int64, memberID *int64, logDate time.Time, status string, note *string) (*model.HabitLog, error)
	// ListLogs returns habit logs newest date first.
	ListLogs(ctx context.Context, householdID int64) ([]model.HabitLog, error)
}

type HabitServiceImpl struct {
	repo repository.HabitRepository
}

// NewHabitService constructs HabitService.
func NewHabitService(repo repository.HabitRepository) *HabitServiceImpl {
	return &HabitServiceImpl{repo: repo}
}

// CreateHabit stores a new habit.
func (s *HabitServiceImpl) CreateHabit(ctx context.Context, householdID int64, memberID *int64, name, frequency string) (*model.Habit, error) {
	if name == "" || frequency == "" {
		return nil, fmt.Errorf("%w: name and frequency required", errs.ErrValidation)
	}
	h := &model.Habit{HouseholdID: householdID, MemberID: memberID, Name: name, Frequency: frequency}
	id, err := s.repo.InsertHabit(ctx, h)
	if err != nil {
		return nil, err
	}
	h.ID = id
	return h, nil
}

// ListHabits returns habits newest first.
func (s *HabitServiceImpl) ListHabits(ctx context.Context, householdID int64) ([]model.Habit, error) {
	return s.repo.ListHabits(ctx, householdID)
}

// CreateLog stores a dated habit check-in. The habit must belong to the
// household; the store reports ErrNotFound otherwise.
func (s *HabitServiceImpl) CreateLog(ctx context.Context, householdID, habitID int64, memberID *int64, logDate time.Time, status string, note *string) (*model.HabitLog, error) {
	if habitID <= 0 || logDate.IsZero() || status == "" {
		return nil, fmt.Errorf("%w: habit, date and status required", errs.ErrValidation)
	}
	l := &model.HabitLog{HabitID: habitID, MemberID: memberID, LogDate: logDate, Status: status, Note: note}
	id, err := s.repo.InsertLog(ctx, householdID, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return l, nil
}

// ListLogs returns habit logs newest date first.
func (s *HabitServiceImpl) ListLogs(ctx context.Context, householdID int64) ([]model.HabitLog, error) {
	return s.repo.ListLogs(ctx, householdID)
}
