// Package recurrence implements repeat-rule normalization and bounded
// expansion of recurring events into concrete occurrences.
package recurrence

import (
	"strconv"
	"strings"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// presets maps user-facing repeat tokens to canonical frequency/interval pairs.
var presets = map[string]model.RecurrenceRule{
	model.PresetEveryDay:   {Frequency: model.FreqDaily, Interval: 1},
	model.PresetEveryWeek:  {Frequency: model.FreqWeekly, Interval: 1},
	model.PresetEvery2Wks:  {Frequency: model.FreqWeekly, Interval: 2},
	model.PresetEveryMonth: {Frequency: model.FreqMonthly, Interval: 1},
	model.PresetEveryYear:  {Frequency: model.FreqYearly, Interval: 1},
}

// Normalize maps a repeat request onto a canonical rule. It returns nil for
// "never", an empty token, or any unrecognized non-custom token (the event
// is a one-off; strict validation is the caller's concern). Custom requests
// fall back to daily for an unknown frequency and clamp the interval to >=1;
// a non-numeric interval silently becomes 1.
func Normalize(req *model.RecurrenceRequest) *model.RecurrenceRule {
	if req == nil || req.Preset == "" || req.Preset == model.PresetNever {
		return nil
	}
	if req.Preset == model.PresetCustom {
		freq := model.Frequency(req.CustomFrequency)
		if !model.ValidFrequency(freq) {
			freq = model.FreqDaily
		}
		return &model.RecurrenceRule{
			Frequency: freq,
			Interval:  coerceInterval(req.CustomInterval),
			Preset:    model.PresetCustom,
		}
	}
	rule, ok := presets[req.Preset]
	if !ok {
		return nil
	}
	rule.Preset = req.Preset
	return &rule
}

// coerceInterval parses a raw interval value and clamps it to a minimum of 1.
func coerceInterval(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Advance returns t moved forward by interval units of f, applying the
// addition to the corresponding calendar field. Field overflow renormalizes
// the date (adding one month to Jan 31 lands in early March when February
// is shorter); this end-of-month drift is accepted, not corrected.
// Time-of-day is preserved.
func Advance(t time.Time, f model.Frequency, interval int) time.Time {
	switch f {
	case model.FreqDaily:
		return t.AddDate(0, 0, interval)
	case model.FreqWeekly:
		return t.AddDate(0, 0, 7*interval)
	case model.FreqMonthly:
		return t.AddDate(0, interval, 0)
	case model.FreqYearly:
		return t.AddDate(interval, 0, 0)
	}
	return t
}
