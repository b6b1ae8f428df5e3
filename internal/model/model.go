// Package model defines domain entities used by services and repositories.
package model

import "time"

// Frequency is the unit of a recurrence interval.
type Frequency string

// Supported recurrence frequencies.
const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// ValidFrequency reports whether f is one of the four supported frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// User-facing repeat presets. Each maps to a fixed frequency/interval pair,
// except PresetCustom which carries its own frequency and interval.
const (
	PresetNever      = "never"
	PresetEveryDay   = "every_day"
	PresetEveryWeek  = "every_week"
	PresetEvery2Wks  = "every_2_weeks"
	PresetEveryMonth = "every_month"
	PresetEveryYear  = "every_year"
	PresetCustom     = "custom"
)

// RecurrenceRule is the canonical recurrence descriptor. It round-trips
// through storage as a single JSON value; Preset is kept for display only
// and does not affect expansion math.
type RecurrenceRule struct {
	Frequency Frequency `json:"frequency"`
	Interval  int       `json:"interval"`
	Preset    string    `json:"preset,omitempty"`
}

// RecurrenceRequest is the untrusted recurrence part of a create/edit
// request. CustomInterval is the raw value as received; coercion and
// clamping happen during normalization.
type RecurrenceRequest struct {
	Preset          string
	CustomFrequency string
	CustomInterval  string
	Until           *time.Time // calendar date, inclusive
}

// Event is a single calendar record. SeriesID, Recurrence and
// RecurrenceUntil are either all nil or all set; events sharing a SeriesID
// were materialized by one generation run.
type Event struct {
	ID              int64
	HouseholdID     int64
	MemberID        *int64
	Title           string
	StartAt         time.Time
	EndAt           *time.Time
	Note            *string
	SeriesID        *string
	Recurrence      *RecurrenceRule
	RecurrenceUntil *time.Time // calendar date, inclusive upper bound for generation
	CreatedAt       time.Time
}

// IsSeriesMember reports whether the event belongs to a recurring series.
func (e *Event) IsSeriesMember() bool { return e.SeriesID != nil }

// EventInput carries the fields of a create request.
type EventInput struct {
	MemberID   *int64
	Title      string
	StartAt    time.Time
	EndAt      *time.Time
	Note       *string
	Recurrence *RecurrenceRequest
}

// EventPatch carries the fields of an edit request. Nil means "keep the
// stored value"; Recurrence nil means the repeat rule is untouched.
type EventPatch struct {
	MemberID   *int64
	Title      *string
	StartAt    *time.Time
	EndAt      *time.Time
	Note       *string
	Recurrence *RecurrenceRequest
}

// Household is the tenant record every other entity is scoped to.
type Household struct {
	ID              int64
	Name            string
	DefaultLanguage string
	Username        string
	PwdHash         []byte
	SaltAuth        []byte
	CreatedAt       time.Time
}

// Member is a person within a household.
type Member struct {
	ID          int64
	HouseholdID int64
	Name        string
	AvatarColor *string
	AvatarPath  *string
	CreatedAt   time.Time
}

// Habit is a named routine tracked per household.
type Habit struct {
	ID          int64
	HouseholdID int64
	MemberID    *int64
	Name        string
	Frequency   string
	CreatedAt   time.Time
}

// HabitLog records one dated habit check-in.
type HabitLog struct {
	ID        int64
	HabitID   int64
	MemberID  *int64
	LogDate   time.Time
	Status    string
	Note      *string
	CreatedAt time.Time
}

// MediaLog records one uploaded photo or video with its stored file path.
type MediaLog struct {
	ID          int64
	HouseholdID int64
	MemberID    int64
	LogDate     time.Time
	MediaType   string
	FilePath    string
	Note        *string
	DurationSec *int64
	CreatedAt   time.Time
}

// Tokens collects issued access tokens.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}
