// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id string) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filter F) (int64, error)
}

// EventRepository defines operations for calendar events
type EventRepository interface {
	Repository[models.Event, models.EventFilter]
	List(ctx context.Context) ([]*models.Event, error)
	ByDate(ctx context.Context, date string) ([]*models.Event, error)
}

// LocationTagRepository defines operations for location tags
type LocationTagRepository interface {
	Repository[models.LocationTag, models.LocationTagFilter]
	List(ctx context.Context) ([]*models.LocationTag, error)
}

// ReferenceWebsiteRepository defines operations for reference websites
type ReferenceWebsiteRepository interface {
	Repository[models.ReferenceWebsite, models.ReferenceWebsiteFilter]
	List(ctx context.Context) ([]*models.ReferenceWebsite, error)
}

// CalendarMetadataRepository tracks the single calendar-wide last-updated timestamp
type CalendarMetadataRepository interface {
	LastUpdated(ctx context.Context) (*time.Time, error)
	Touch(ctx context.Context) error
}

// UserInterestRepository defines operations for per-session event bookmarks
type UserInterestRepository interface {
	EventIDsBySession(ctx context.Context, sessionID string) ([]string, error)
	Toggle(ctx context.Context, sessionID, eventID string) (bool, error)
}
