package repository

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"gorm.io/gorm"
)

// LocationTagRepositoryImpl implements LocationTagRepository interface
type LocationTagRepositoryImpl struct {
	*BaseRepository[models.LocationTag, models.LocationTagFilter]
}

// NewLocationTagRepository creates a new location tag repository
func NewLocationTagRepository(db *gorm.DB) LocationTagRepository {
	return &LocationTagRepositoryImpl{
		BaseRepository: NewBaseRepository[models.LocationTag, models.LocationTagFilter](db),
	}
}

// List retrieves all location tags in insertion order
func (r *LocationTagRepositoryImpl) List(ctx context.Context) ([]*models.LocationTag, error) {
	return r.ByFilter(ctx, models.LocationTagFilter{}, "created_at ASC", 0, 0)
}

// applyFilter applies filter criteria to a GORM query
func (r *LocationTagRepositoryImpl) applyFilter(query *gorm.DB, filter models.LocationTagFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	return query
}

// ByFilter retrieves location tags based on filter criteria
func (r *LocationTagRepositoryImpl) ByFilter(ctx context.Context, filter models.LocationTagFilter, orderBy string, limit, offset int) ([]*models.LocationTag, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.LocationTag{})

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

	var rows []*models.LocationTag
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of location tags matching the filter
func (r *LocationTagRepositoryImpl) Count(ctx context.Context, filter models.LocationTagFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.LocationTag{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
