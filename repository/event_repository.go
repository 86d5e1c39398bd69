package repository

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"gorm.io/gorm"
)

// EventRepositoryImpl implements EventRepository interface
type EventRepositoryImpl struct {
	*BaseRepository[models.Event, models.EventFilter]
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Event, models.EventFilter](db),
	}
}

// List retrieves all events in insertion order
func (r *EventRepositoryImpl) List(ctx context.Context) ([]*models.Event, error) {
	return r.ByFilter(ctx, models.EventFilter{}, "created_at ASC", 0, 0)
}

// ByDate retrieves events whose calendar date equals the given YYYY-MM-DD string
func (r *EventRepositoryImpl) ByDate(ctx context.Context, date string) ([]*models.Event, error) {
	filter := models.EventFilter{Date: &date}
	return r.ByFilter(ctx, filter, "created_at ASC", 0, 0)
}

// applyFilter applies filter criteria to a GORM query
func (r *EventRepositoryImpl) applyFilter(query *gorm.DB, filter models.EventFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.LocationTagID != nil {
		query = query.Where("location_tag_id = ?", *filter.LocationTagID)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves events based on filter criteria
func (r *EventRepositoryImpl) ByFilter(ctx context.Context, filter models.EventFilter, orderBy string, limit, offset int) ([]*models.Event, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Event{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "created_at ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.Event
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of events matching the filter
func (r *EventRepositoryImpl) Count(ctx context.Context, filter models.EventFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Event{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
