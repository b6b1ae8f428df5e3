package service

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// HouseholdService exposes the tenant profile.
type HouseholdService interface {
	// Get returns the household record.
	Get(ctx context.Context, householdID int64) (*model.Household, error)
	// UpdateProfile updates name and default language; nil keeps the stored value.
	UpdateProfile(ctx context.Context, householdID int64, name, defaultLanguage *string) (*model.Household, error)
}

type HouseholdServiceImpl struct {
	repo repository.HouseholdRepository
}

// NewHouseholdService constructs HouseholdService.
func NewHouseholdService(repo repository.HouseholdRepository) *HouseholdServiceImpl {
	return &HouseholdServiceImpl{repo: repo}
}

// Get fetches the household record.
func (s *HouseholdServiceImpl) Get(ctx context.Context, householdID int64) (*model.Household, error) {
	return s.repo.GetByID(ctx, householdID)
}

// UpdateProfile updates name and default language.
func (s *HouseholdServiceImpl) UpdateProfile(ctx context.Context, householdID int64, name, defaultLanguage *string) (*model.Household, error) {
	return s.repo.UpdateProfile(ctx, householdID, name, defaultLanguage)
}
