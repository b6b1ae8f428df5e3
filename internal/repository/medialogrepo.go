package repository

import (
	"context"

	"github.com/gaoqi7/familyCalendar/internal/model"
)

// MediaLogRepository stores uploaded photo/video log entries.
type MediaLogRepository interface {
	// Insert stores a media log entry and returns its assigned id.
	Insert(ctx context.Context, l *model.MediaLog) (int64, error)

	// ListByHousehold returns media logs newest date first.
	ListByHousehold(ctx context.Context, householdID int64) ([]model.MediaLog, error)
}
