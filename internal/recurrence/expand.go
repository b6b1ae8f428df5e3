package recurrence

import (
	"time"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// MaxOccurrences caps one generation run regardless of the until date, so a
// misconfigured rule cannot produce unbounded rows or loop forever.
const MaxOccurrences = 1000

// Occurrence is one generated (start, end) pair. End is nil when the base
// event has no end time.
type Occurrence struct {
	Start time.Time
	End   *time.Time
}

// Expand walks Advance forward from the base start and emits every candidate
// up to and including the last instant of the until date. The base itself is
// not emitted. When the base has an end, each occurrence keeps the base's
// exact duration. The result is deterministic for identical inputs and never
// exceeds MaxOccurrences entries.
func Expand(start time.Time, end *time.Time, rule model.RecurrenceRule, until time.Time) []Occurrence {
	limit := endOfDay(until)

	var dur time.Duration
	if end != nil {
		dur = end.Sub(start)
	}

	out := make([]Occurrence, 0)
	cur := start
	for len(out) < MaxOccurrences {
		cur = Advance(cur, rule.Frequency, rule.Interval)
		if cur.After(limit) {
			break
		}
		occ := Occurrence{Start: cur}
		if end != nil {
			e := cur.Add(dur)
			occ.End = &e
		}
		out = append(out, occ)
	}
	return out
}

// DateOf truncates t to its calendar date, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveUntil picks the generation bound for a series: the explicit until
// date when supplied, otherwise the calendar date of the event's end, else
// of its start. With no explicit bound and no end time a recurring event
// therefore degenerates to its base occurrence only.
func ResolveUntil(explicit *time.Time, end *time.Time, start time.Time) time.Time {
	if explicit != nil {
		return DateOf(*explicit)
	}
	if end != nil {
		return DateOf(*end)
	}
	return DateOf(start)
}

// endOfDay returns the last counted instant of the calendar date of t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
