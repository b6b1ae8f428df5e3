package recurrence

import (
	"testing"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

func TestNormalize_NeverAndEmpty(t *testing.T) {
	t.Parallel()
	if Normalize(nil) != nil {
		t.Fatalf("nil request must produce no rule")
	}
	if Normalize(&model.RecurrenceRequest{Preset: ""}) != nil {
		t.Fatalf("empty preset must produce no rule")
	}
	if Normalize(&model.RecurrenceRequest{Preset: model.PresetNever}) != nil {
		t.Fatalf("never must produce no rule")
	}
}

func TestNormalize_FixedPresets(t *testing.T) {
	t.Parallel()
	cases := []struct {
		preset   string
		wantFreq model.Frequency
		wantIvl  int
	}{
		{model.PresetEveryDay, model.FreqDaily, 1},
		{model.PresetEveryWeek, model.FreqWeekly, 1},
		{model.PresetEvery2Wks, model.FreqWeekly, 2},
		{model.PresetEveryMonth, model.FreqMonthly, 1},
		{model.PresetEveryYear, model.FreqYearly, 1},
	}
	for _, c := range cases {
		rule := Normalize(&model.RecurrenceRequest{Preset: c.preset})
		if rule == nil {
			t.Fatalf("%s: want rule, got nil", c.preset)
		}
		if rule.Frequency != c.wantFreq || rule.Interval != c.wantIvl {
			t.Fatalf("%s: got %s/%d, want %s/%d", c.preset, rule.Frequency, rule.Interval, c.wantFreq, c.wantIvl)
		}
		if rule.Preset != c.preset {
			t.Fatalf("%s: preset not retained, got %q", c.preset, rule.Preset)
		}
	}
}

func TestNormalize_Custom(t *testing.T) {
	t.Parallel()

	rule := Normalize(&model.RecurrenceRequest{
		Preset:          model.PresetCustom,
		CustomFrequency: "weekly",
		CustomInterval:  "3",
	})
	if rule == nil || rule.Frequency != model.FreqWeekly || rule.Interval != 3 {
		t.Fatalf("custom weekly/3: got %+v", rule)
	}
	if rule.Preset != model.PresetCustom {
		t.Fatalf("custom preset not retained: %q", rule.Preset)
	}

	// Unknown frequency falls back to daily.
	rule = Normalize(&model.RecurrenceRequest{
		Preset:          model.PresetCustom,
		CustomFrequency: "fortnightly",
		CustomInterval:  "2",
	})
	if rule == nil || rule.Frequency != model.FreqDaily || rule.Interval != 2 {
		t.Fatalf("unknown frequency: got %+v", rule)
	}
}

func TestNormalize_IntervalCoercion(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"0", "-4", "", "abc", " 0 "} {
		rule := Normalize(&model.RecurrenceRequest{Preset: model.PresetCustom, CustomInterval: raw})
		if rule == nil || rule.Interval != 1 {
			t.Fatalf("interval %q: want clamp to 1, got %+v", raw, rule)
		}
	}
	rule := Normalize(&model.RecurrenceRequest{Preset: model.PresetCustom, CustomInterval: " 5 "})
	if rule == nil || rule.Interval != 5 {
		t.Fatalf("interval ' 5 ': got %+v", rule)
	}
}

func TestNormalize_UnknownPreset(t *testing.T) {
	t.Parallel()
	if Normalize(&model.RecurrenceRequest{Preset: "every_other_sunday"}) != nil {
		t.Fatalf("unrecognized non-custom token must silently mean one-off")
	}
}

func TestAdvance_CalendarFields(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 6, 15, 9, 30, 0, 0, time.Local)

	if got := Advance(base, model.FreqDaily, 3); !got.Equal(base.AddDate(0, 0, 3)) {
		t.Fatalf("daily: got %v", got)
	}
	if got := Advance(base, model.FreqWeekly, 2); !got.Equal(base.AddDate(0, 0, 14)) {
		t.Fatalf("weekly: got %v", got)
	}
	if got := Advance(base, model.FreqMonthly, 1); got.Month() != time.July || got.Day() != 15 {
		t.Fatalf("monthly: got %v", got)
	}
	if got := Advance(base, model.FreqYearly, 1); got.Year() != 2025 {
		t.Fatalf("yearly: got %v", got)
	}
}

func TestAdvance_PreservesTimeOfDay(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 3, 10, 18, 45, 30, 0, time.Local)
	got := Advance(base, model.FreqMonthly, 2)
	h, m, s := got.Clock()
	if h != 18 || m != 45 || s != 30 {
		t.Fatalf("time of day changed: %v", got)
	}
}

func TestAdvance_MonthOverflowDrift(t *testing.T) {
	t.Parallel()
	// Jan 31 + 1 month lands on Mar 2 in a leap year: the overflow past
	// Feb 29 renormalizes instead of clamping.
	base := time.Date(2024, 1, 31, 9, 0, 0, 0, time.Local)
	got := Advance(base, model.FreqMonthly, 1)
	want := time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("drift: got %v, want %v", got, want)
	}
}

func TestAdvance_UnknownFrequencyUnchanged(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	if got := Advance(base, model.Frequency("hourly"), 1); !got.Equal(base) {
		t.Fatalf("unknown frequency must not move the cursor: %v", got)
	}
}
