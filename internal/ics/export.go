// Package ics renders a household's events as an iCalendar document.
// Recurring series are exported as their materialized occurrences, since the
// store already holds one concrete row per occurrence.
package ics

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

const prodID = "-//familyCalendar//calendar export//EN"

// Export builds an iCalendar document for the given events.
func Export(householdName string, events []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	if householdName != "" {
		cal.SetXWRCalName(householdName)
	}

	for _, ev := range events {
		ve := cal.AddEvent(uid(ev))
		ve.SetSummary(ev.Title)
		ve.SetStartAt(ev.StartAt)
		if ev.EndAt != nil {
			ve.SetEndAt(*ev.EndAt)
		}
		if ev.Note != nil && *ev.Note != "" {
			ve.SetDescription(*ev.Note)
		}
		if !ev.CreatedAt.IsZero() {
			ve.SetCreatedTime(ev.CreatedAt)
			ve.SetDtStampTime(ev.CreatedAt)
		}
	}
	return cal.Serialize()
}

// uid derives a stable per-row identifier. Series members get distinct UIDs
// on purpose: each stored occurrence is its own concrete event.
func uid(ev model.Event) string {
	return fmt.Sprintf("event-%d@familycalendar", ev.ID)
}
