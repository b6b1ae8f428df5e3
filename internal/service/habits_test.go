package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

type fakeHabitRepo struct {
	insertHabitIn *model.Habit

	insertLogInHH int64
	insertLogIn   *model.HabitLog
	insertLogErr  error
}

var _ repository.HabitRepository = (*fakeHabitRepo)(nil)

func (f *fakeHabitRepo) InsertHabit(_ context.Context, h *model.Habit) (int64, error) {
	cp := *h
	f.insertHabitIn = &cp
	return 31, nil
}

func (f *fakeHabitRepo) ListHabits(_ context.Context, _ int64) ([]model.Habit, error) {
	return nil, nil
}

func (f *fakeHabitRepo) InsertLog(_ context.Context, householdID int64, l *model.HabitLog) (int64, error) {
	if f.insertLogErr != nil {
		return 0, f.insertLogErr
	}
	f.insertLogInHH = householdID
	cp := *l
	f.insertLogIn = &cp
	return 41, nil
}

func (f *fakeHabitRepo) ListLogs(_ context.Context, _ int64) ([]model.HabitLog, error) {
	return nil, nil
}

func TestHabitService_CreateHabit_Validation(t *testing.T) {
	t.Parallel()
	repo := &fakeHabitRepo{}
	s := NewHabitService(repo)

	if _, err := s.CreateHabit(context.Background(), 7, nil, "", "daily"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if _, err := s.CreateHabit(context.Background(), 7, nil, "Reading", ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if repo.insertHabitIn != nil {
		t.Fatalf("repo must not be called on invalid input")
	}
}

func TestHabitService_CreateLog_ScopesToHousehold(t *testing.T) {
	t.Parallel()
	repo := &fakeHabitRepo{}
	s := NewHabitService(repo)

	l, err := s.CreateLog(context.Background(), 7, 31, nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), "done", nil)
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if l.ID != 41 || repo.insertLogIn.HabitID != 31 {
		t.Fatalf("unexpected log: %+v", l)
	}
	if repo.insertLogInHH != 7 {
		t.Fatalf("household id must reach the store, got %d", repo.insertLogInHH)
	}
}

func TestHabitService_CreateLog_ForeignHabitRejected(t *testing.T) {
	t.Parallel()
	repo := &fakeHabitRepo{insertLogErr: errs.ErrNotFound}
	s := NewHabitService(repo)

	_, err := s.CreateLog(context.Background(), 7, 99, nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), "done", nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("logging against another household's habit must fail, got %v", err)
	}
}

func TestHabitService_CreateLog_Validation(t *testing.T) {
	t.Parallel()
	repo := &fakeHabitRepo{}
	s := NewHabitService(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	if _, err := s.CreateLog(context.Background(), 7, 0, nil, date, "done", nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on missing habit, got %v", err)
	}
	if _, err := s.CreateLog(context.Background(), 7, 31, nil, time.Time{}, "done", nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on zero date, got %v", err)
	}
	if _, err := s.CreateLog(context.Background(), 7, 31, nil, date, "", nil); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on empty status, got %v", err)
	}
}
