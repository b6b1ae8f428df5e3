// Package convert maps between JSON transport payloads and domain entities.
package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// Naive local date/time layouts used on the wire. The calendar deliberately
// has no timezone handling beyond the server's location.
const (
	dateTimeLayout      = "2006-01-02T15:04:05"
	dateTimeShortLayout = "2006-01-02T15:04"
	dateLayout          = "2006-01-02"
)

// RawInterval accepts a custom repeat interval sent either as a JSON number
// or a string. Coercion to a usable integer happens during normalization.
type RawInterval string

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawInterval) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RawInterval(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*r = RawInterval(n.String())
		return nil
	}
	return fmt.Errorf("customInterval must be a number or a string")
}

// EventDTO is the JSON shape of an event.
type EventDTO struct {
	ID              int64                 `json:"id"`
	MemberID        *int64                `json:"memberId,omitempty"`
	Title           string                `json:"title"`
	StartAt         string                `json:"startAt"`
	EndAt           *string               `json:"endAt,omitempty"`
	Note            *string               `json:"note,omitempty"`
	SeriesID        *string               `json:"seriesId,omitempty"`
	Recurrence      *model.RecurrenceRule `json:"recurrence,omitempty"`
	RecurrenceUntil *string               `json:"recurrenceUntil,omitempty"`
	CreatedAt       string                `json:"createdAt"`
}

// CreateEventRequest is the JSON body of an event create request.
type CreateEventRequest struct {
	MemberID        *int64      `json:"memberId"`
	Title           string      `json:"title"`
	StartAt         string      `json:"startAt"`
	EndAt           *string     `json:"endAt"`
	Note            *string     `json:"note"`
	RepeatRule      string      `json:"repeatRule"`
	RepeatUntil     *string     `json:"repeatUntil"`
	CustomFrequency string      `json:"customFrequency"`
	CustomInterval  RawInterval `json:"customInterval"`
}

// PatchEventRequest is the JSON body of an event edit request. Nil fields
// keep the stored value; a non-nil RepeatRule marks a recurrence change.
type PatchEventRequest struct {
	MemberID        *int64      `json:"memberId"`
	Title           *string     `json:"title"`
	StartAt         *string     `json:"startAt"`
	EndAt           *string     `json:"endAt"`
	Note            *string     `json:"note"`
	RepeatRule      *string     `json:"repeatRule"`
	RepeatUntil     *string     `json:"repeatUntil"`
	CustomFrequency string      `json:"customFrequency"`
	CustomInterval  RawInterval `json:"customInterval"`
}

// ToEventDTO converts a domain event to its JSON shape.
func ToEventDTO(ev model.Event) EventDTO {
	dto := EventDTO{
		ID:         ev.ID,
		MemberID:   ev.MemberID,
		Title:      ev.Title,
		StartAt:    ev.StartAt.Format(dateTimeLayout),
		Note:       ev.Note,
		SeriesID:   ev.SeriesID,
		Recurrence: ev.Recurrence,
		CreatedAt:  ev.CreatedAt.Format(time.RFC3339),
	}
	if ev.EndAt != nil {
		s := ev.EndAt.Format(dateTimeLayout)
		dto.EndAt = &s
	}
	if ev.RecurrenceUntil != nil {
		s := ev.RecurrenceUntil.Format(dateLayout)
		dto.RecurrenceUntil = &s
	}
	return dto
}

// ToEventDTOs converts a slice of domain events.
func ToEventDTOs(evs []model.Event) []EventDTO {
	out := make([]EventDTO, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ToEventDTO(ev))
	}
	return out
}

// FromCreateEventRequest converts a create payload to domain input.
func FromCreateEventRequest(req CreateEventRequest) (model.EventInput, error) {
	start, err := ParseDateTime(req.StartAt)
	if err != nil {
		return model.EventInput{}, fmt.Errorf("invalid startAt: %w", err)
	}
	in := model.EventInput{
		MemberID: req.MemberID,
		Title:    req.Title,
		StartAt:  start,
		Note:     req.Note,
	}
	if req.EndAt != nil && *req.EndAt != "" {
		end, err := ParseDateTime(*req.EndAt)
		if err != nil {
			return model.EventInput{}, fmt.Errorf("invalid endAt: %w", err)
		}
		in.EndAt = &end
	}
	rec, err := recurrenceRequest(req.RepeatRule, req.CustomFrequency, req.CustomInterval, req.RepeatUntil)
	if err != nil {
		return model.EventInput{}, err
	}
	in.Recurrence = rec
	return in, nil
}

// FromPatchEventRequest converts an edit payload to a domain patch.
func FromPatchEventRequest(req PatchEventRequest) (model.EventPatch, error) {
	patch := model.EventPatch{
		MemberID: req.MemberID,
		Title:    req.Title,
		Note:     req.Note,
	}
	if req.StartAt != nil {
		start, err := ParseDateTime(*req.StartAt)
		if err != nil {
			return model.EventPatch{}, fmt.Errorf("invalid startAt: %w", err)
		}
		patch.StartAt = &start
	}
	if req.EndAt != nil {
		end, err := ParseDateTime(*req.EndAt)
		if err != nil {
			return model.EventPatch{}, fmt.Errorf("invalid endAt: %w", err)
		}
		patch.EndAt = &end
	}
	if req.RepeatRule != nil {
		rec, err := recurrenceRequest(*req.RepeatRule, req.CustomFrequency, req.CustomInterval, req.RepeatUntil)
		if err != nil {
			return model.EventPatch{}, err
		}
		if rec == nil {
			rec = &model.RecurrenceRequest{Preset: *req.RepeatRule}
		}
		patch.Recurrence = rec
	}
	return patch, nil
}

// recurrenceRequest assembles the untrusted recurrence part of a request.
// An empty repeat token yields nil (one-off event).
func recurrenceRequest(repeatRule, customFrequency string, customInterval RawInterval, repeatUntil *string) (*model.RecurrenceRequest, error) {
	if repeatRule == "" {
		return nil, nil
	}
	rec := &model.RecurrenceRequest{
		Preset:          repeatRule,
		CustomFrequency: customFrequency,
		CustomInterval:  string(customInterval),
	}
	if repeatUntil != nil && *repeatUntil != "" {
		until, err := ParseDate(*repeatUntil)
		if err != nil {
			return nil, fmt.Errorf("invalid repeatUntil: %w", err)
		}
		rec.Until = &until
	}
	return rec, nil
}

// ParseDateTime parses a naive local date-time, accepting RFC3339 as well as
// the datetime-local forms browsers send.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, dateTimeLayout, dateTimeShortLayout} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time %q", s)
}

// ParseDate parses a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	return t, nil
}
