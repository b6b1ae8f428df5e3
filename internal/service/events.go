// Package service contains application services for authentication, events,
// members, habits and media logs.
package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/recurrence"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// EventService coordinates event and series writes against the event store.
type EventService interface {
	// Create stores a new event and, for a recurring rule, materializes its
	// series occurrences. Returns the base event only.
	Create(ctx context.Context, householdID int64, in model.EventInput) (*model.Event, error)
	// Update merges a patch into an existing event; a recurrence change
	// tears down the old series and rebuilds it from the edited event.
	Update(ctx context.Context, householdID, id int64, patch model.EventPatch) (*model.Event, error)
	// DeleteOccurrence detaches and removes exactly one event by id.
	DeleteOccurrence(ctx context.Context, householdID, id int64) error
	// DeleteSeries removes every event of the target's series, or just the
	// target for a one-off event.
	DeleteSeries(ctx context.Context, householdID, id int64) error
	// Get returns a single event by id.
	Get(ctx context.Context, householdID, id int64) (*model.Event, error)
	// List returns all events of a household ordered by start time.
	List(ctx context.Context, householdID int64) ([]model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
	log  *zap.Logger
}

// NewEventService constructs EventService.
func NewEventService(repo repository.EventRepository, log *zap.Logger) *EventServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventServiceImpl{repo: repo, log: log}
}

// Create validates input, stores the base event and materializes occurrences
// when a recurrence rule is present.
func (s *EventServiceImpl) Create(ctx context.Context, householdID int64, in model.EventInput) (*model.Event, error) {
	if householdID <= 0 {
		return nil, fmt.Errorf("%w: household id required", errs.ErrValidation)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title required", errs.ErrValidation)
	}
	if in.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start required", errs.ErrValidation)
	}
	if in.EndAt != nil && in.EndAt.Before(in.StartAt) {
		return nil, fmt.Errorf("%w: end before start", errs.ErrValidation)
	}

	ev := &model.Event{
		HouseholdID: householdID,
		MemberID:    in.MemberID,
		Title:       in.Title,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Note:        in.Note,
	}

	rule := recurrence.Normalize(in.Recurrence)
	if rule == nil {
		id, err := s.repo.Insert(ctx, ev)
		if err != nil {
			return nil, err
		}
		ev.ID = id
		return ev, nil
	}

	until := recurrence.ResolveUntil(in.Recurrence.Until, in.EndAt, in.StartAt)
	seriesID, err := newSeriesID()
	if err != nil {
		return nil, err
	}
	ev.SeriesID = &seriesID
	ev.Recurrence = rule
	ev.RecurrenceUntil = &until

	id, err := s.repo.Insert(ctx, ev)
	if err != nil {
		return nil, err
	}
	ev.ID = id

	if err := s.materialize(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Update applies replace-if-provided merge semantics. A patch carrying a
// recurrence change discards every other member of the old series and, for a
// non-never rule, regenerates the series from the edited event forward under
// a fresh series id. Plain field edits leave sibling occurrences untouched.
func (s *EventServiceImpl) Update(ctx context.Context, householdID, id int64, patch model.EventPatch) (*model.Event, error) {
	ev, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", errs.ErrValidation)
		}
		ev.Title = *patch.Title
	}
	if patch.MemberID != nil {
		ev.MemberID = patch.MemberID
	}
	if patch.StartAt != nil {
		ev.StartAt = *patch.StartAt
	}
	if patch.EndAt != nil {
		ev.EndAt = patch.EndAt
	}
	if patch.Note != nil {
		ev.Note = patch.Note
	}

	oldSeriesID := ev.SeriesID
	hasRepeatUpdate := patch.Recurrence != nil
	var rule *model.RecurrenceRule
	if hasRepeatUpdate {
		rule = recurrence.Normalize(patch.Recurrence)
		if rule != nil {
			seriesID, err := newSeriesID()
			if err != nil {
				return nil, err
			}
			until := recurrence.ResolveUntil(patch.Recurrence.Until, ev.EndAt, ev.StartAt)
			ev.SeriesID = &seriesID
			ev.Recurrence = rule
			ev.RecurrenceUntil = &until
		} else {
			// Repeat switched off: the edited event becomes a one-off. The
			// three series fields are cleared together.
			ev.SeriesID = nil
			ev.Recurrence = nil
			ev.RecurrenceUntil = nil
		}
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		return nil, err
	}

	if hasRepeatUpdate && oldSeriesID != nil {
		if err := s.repo.DeleteBySeriesID(ctx, householdID, *oldSeriesID, &ev.ID); err != nil {
			return nil, err
		}
	}
	if hasRepeatUpdate && rule != nil {
		if err := s.materialize(ctx, ev); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

// DeleteOccurrence removes exactly the targeted event. Siblings keep their
// series id; an unknown id is a no-op.
func (s *EventServiceImpl) DeleteOccurrence(ctx context.Context, householdID, id int64) error {
	return s.repo.DeleteByID(ctx, householdID, id)
}

// DeleteSeries removes every event sharing the target's series id, or just
// the target when it is a one-off.
func (s *EventServiceImpl) DeleteSeries(ctx context.Context, householdID, id int64) error {
	ev, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return err
	}
	if ev.SeriesID != nil {
		return s.repo.DeleteBySeriesID(ctx, householdID, *ev.SeriesID, nil)
	}
	return s.repo.DeleteByID(ctx, householdID, id)
}

// Get fetches a single event by id.
func (s *EventServiceImpl) Get(ctx context.Context, householdID, id int64) (*model.Event, error) {
	return s.repo.GetByID(ctx, householdID, id)
}

// List returns all events of a household ordered by start time.
func (s *EventServiceImpl) List(ctx context.Context, householdID int64) ([]model.Event, error) {
	return s.repo.ListByHousehold(ctx, householdID)
}

// materialize expands the base event's rule and batch-inserts the generated
// occurrences, all carrying the base's series fields.
func (s *EventServiceImpl) materialize(ctx context.Context, base *model.Event) error {
	occs := recurrence.Expand(base.StartAt, base.EndAt, *base.Recurrence, *base.RecurrenceUntil)
	switch {
	case len(occs) == 0:
		// Valid output, not an error: e.g. until date before the base start.
		s.log.Warn("recurrence produced no occurrences",
			zap.Int64("event_id", base.ID),
			zap.Timep("until", base.RecurrenceUntil),
		)
		return nil
	case len(occs) == recurrence.MaxOccurrences:
		s.log.Warn("occurrence generation truncated at cap",
			zap.Int64("event_id", base.ID),
			zap.Int("cap", recurrence.MaxOccurrences),
		)
	}

	batch := make([]model.Event, 0, len(occs))
	for _, occ := range occs {
		batch = append(batch, model.Event{
			HouseholdID:     base.HouseholdID,
			MemberID:        base.MemberID,
			Title:           base.Title,
			StartAt:         occ.Start,
			EndAt:           occ.End,
			Note:            base.Note,
			SeriesID:        base.SeriesID,
			Recurrence:      base.Recurrence,
			RecurrenceUntil: base.RecurrenceUntil,
		})
	}
	_, err := s.repo.InsertBatch(ctx, batch)
	return err
}

func newSeriesID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
