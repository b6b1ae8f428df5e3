package repository

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// HouseholdRepository stores tenant records and their login credentials.
type HouseholdRepository interface {
	// Create inserts a new household; ErrAlreadyExists on a taken username.
	Create(ctx context.Context, h *model.Household) (int64, error)

	// GetByID returns a household or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Household, error)

	// GetByUsername returns a household by login name or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*model.Household, error)

	// UpdateProfile updates name and default language, keeping stored values
	// for nil fields.
	UpdateProfile(ctx context.Context, id int64, name, defaultLanguage *string) (*model.Household, error)
}
