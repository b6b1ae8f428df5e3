package convert

import (
	"time"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// HouseholdDTO is the wire form of a household profile. Credentials never
// leave the server.
type HouseholdDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DefaultLanguage string `json:"defaultLanguage"`
	Username        string `json:"username"`
	CreatedAt       string `json:"createdAt"`
}

// MemberDTO is the wire form of a household member.
type MemberDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	AvatarColor *string `json:"avatarColor"`
	AvatarPath  *string `json:"avatarPath"`
	CreatedAt   string  `json:"createdAt"`
}

// HabitDTO is the wire form of a habit.
type HabitDTO struct {
	ID        int64  `json:"id"`
	MemberID  *int64 `json:"memberId"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	CreatedAt string `json:"createdAt"`
}

// HabitLogDTO is the wire form of a habit check-in.
type HabitLogDTO struct {
	ID       int64   `json:"id"`
	HabitID  int64   `json:"habitId"`
	MemberID *int64  `json:"memberId"`
	LogDate  string  `json:"logDate"`
	Status   string  `json:"status"`
	Note     *string `json:"note"`
}

// MediaLogDTO is the wire form of a media log entry.
type MediaLogDTO struct {
	ID          int64   `json:"id"`
	MemberID    int64   `json:"memberId"`
	LogDate     string  `json:"logDate"`
	MediaType   string  `json:"mediaType"`
	FilePath    string  `json:"filePath"`
	Note        *string `json:"note"`
	DurationSec *int64  `json:"durationSec"`
	CreatedAt   string  `json:"createdAt"`
}

// ToHouseholdDTO maps a household to its wire form.
func ToHouseholdDTO(h model.Household) HouseholdDTO {
	return HouseholdDTO{
		ID:              h.ID,
		Name:            h.Name,
		DefaultLanguage: h.DefaultLanguage,
		Username:        h.Username,
		CreatedAt:       h.CreatedAt.Format(time.RFC3339),
	}
}

// ToMemberDTO maps a member to its wire form.
func ToMemberDTO(m model.Member) MemberDTO {
	return MemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		AvatarColor: m.AvatarColor,
		AvatarPath:  m.AvatarPath,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// ToMemberDTOs maps a member slice to its wire form.
func ToMemberDTOs(members []model.Member) []MemberDTO {
	out := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, ToMemberDTO(m))
	}
	return out
}

// ToHabitDTO maps a habit to its wire form.
func ToHabitDTO(h model.Habit) HabitDTO {
	return HabitDTO{
		ID:        h.ID,
		MemberID:  h.MemberID,
		Name:      h.Name,
		Frequency: h.Frequency,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

// ToHabitDTOs maps a habit slice to its wire form.
func ToHabitDTOs(habits []model.Habit) []HabitDTO {
	out := make([]HabitDTO, 0, len(habits))
	for _, h := range habits {
		out = append(out, ToHabitDTO(h))
	}
	return out
}

// ToHabitLogDTO maps a habit log to its wire form.
func ToHabitLogDTO(l model.HabitLog) HabitLogDTO {
	return HabitLogDTO{
		ID:       l.ID,
		HabitID:  l.HabitID,
		MemberID: l.MemberID,
		LogDate:  l.LogDate.Format(dateLayout),
		Status:   l.Status,
		Note:     l.Note,
	}
}

// ToHabitLogDTOs maps a habit log slice to its wire form.
func ToHabitLogDTOs(logs []model.HabitLog) []HabitLogDTO {
	out := make([]HabitLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToHabitLogDTO(l))
	}
	return out
}

// ToMediaLogDTO maps a media log to its wire form.
func ToMediaLogDTO(l model.MediaLog) MediaLogDTO {
	return MediaLogDTO{
		ID:          l.ID,
		MemberID:    l.MemberID,
		LogDate:     l.LogDate.Format(dateLayout),
		MediaType:   l.MediaType,
		FilePath:    l.FilePath,
		Note:        l.Note,
		DurationSec: l.DurationSec,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

// ToMediaLogDTOs maps a media log slice to its wire form.
func ToMediaLogDTOs(logs []model.MediaLog) []MediaLogDTO {
	out := make([]MediaLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToMediaLogDTO(l))
	}
	return out
}
