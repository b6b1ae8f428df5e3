package repository

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// MemberRepository stores household members.
type MemberRepository interface {
	// Insert stores a member and returns its assigned id.
	Insert(ctx context.Context, m *model.Member) (int64, error)

	// GetByID returns a member or ErrNotFound.
	GetByID(ctx context.Context, householdID, id int64) (*model.Member, error)

	// ListByHousehold returns members newest first.
	ListByHousehold(ctx context.Context, householdID int64) ([]model.Member, error)

	// Update rewrites name, avatar color and avatar path, keeping stored
	// values for nil fields.
	Update(ctx context.Context, householdID, id int64, name, avatarColor, avatarPath *string) (*model.Member, error)

	// DeleteByID removes a member row.
	DeleteByID(ctx context.Context, householdID, id int64) error
}
