package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// Accepted media log types.
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// MediaService manages photo/video log entries.
type MediaService interface {
	// Create stores a media log entry pointing at an uploaded file.
	Create(ctx context.Context, householdID, memberID int64, logDate time.Time, mediaType, filePath string, note *string, durationSec *int64) (*model.MediaLog, error)
	// List returns media logs newest date first.
	List(ctx context.Context, householdID int64) ([]model.MediaLog, error)
}

type MediaServiceImpl struct {
	repo repository.MediaLogRepository
}

// NewMediaService constructs MediaService.
func NewMediaService(repo repository.MediaLogRepository) *MediaServiceImpl {
	return &MediaServiceImpl{repo: repo}
}

// Create stores a media log entry.
func (s *MediaServiceImpl) Create(ctx context.Context, householdID, memberID int64, logDate time.Time, mediaType, filePath string, note *string, durationSec *int64) (*model.MediaLog, error) {
	if memberID <= 0 || logDate.IsZero() || filePath == "" {
		return nil, fmt.Errorf("%w: member, date and file required", errs.ErrValidation)
	}
	if mediaType != MediaTypePhoto && mediaType != MediaTypeVideo {
		return nil, fmt.Errorf("%w: media type must be photo or video", errs.ErrValidation)
	}
	l := &model.MediaLog{
		HouseholdID: householdID,
		MemberID:    memberID,
		LogDate:     logDate,
		MediaType:   mediaType,
		FilePath:    filePath,
		Note:        note,
		DurationSec: durationSec,
	}
	id, err := s.repo.Insert(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return l, nil
}

// List returns media logs newest date first.
func (s *MediaServiceImpl) List(ctx context.Context, householdID int64) ([]model.MediaLog, error) {
	return s.repo.ListByHousehold(ctx, householdID)
}
