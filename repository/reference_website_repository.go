package repository

import (
	"context"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"gorm.io/gorm"
)

// ReferenceWebsiteRepositoryImpl implements ReferenceWebsiteRepository interface
type ReferenceWebsiteRepositoryImpl struct {
	*BaseRepository[models.ReferenceWebsite, models.ReferenceWebsiteFilter]
}

// NewReferenceWebsiteRepository creates a new reference website repository
func NewReferenceWebsiteRepository(db *gorm.DB) ReferenceWebsiteRepository {
	return &ReferenceWebsiteRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ReferenceWebsite, models.ReferenceWebsiteFilter](db),
	}
}

// List retrieves all reference websites in insertion order
func (r *ReferenceWebsiteRepositoryImpl) List(ctx context.Context) ([]*models.ReferenceWebsite, error) {
	return r.ByFilter(ctx, models.ReferenceWebsiteFilter{}, "created_at ASC", 0, 0)
}

// applyFilter applies filter criteria to a GORM query
func (r *ReferenceWebsiteRepositoryImpl) applyFilter(query *gorm.DB, filter models.ReferenceWebsiteFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Title != nil {
		query = query.Where("title = ?", *filter.Title)
	}
	return query
}

// ByFilter retrieves reference websites based on filter criteria
func (r *ReferenceWebsiteRepositoryImpl) ByFilter(ctx context.Context, filter models.ReferenceWebsiteFilter, orderBy string, limit, offset int) ([]*models.ReferenceWebsite, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.ReferenceWebsite{})

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

	var rows []*models.ReferenceWebsite
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of reference websites matching the filter
func (r *ReferenceWebsiteRepositoryImpl) Count(ctx context.Context, filter models.ReferenceWebsiteFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.ReferenceWebsite{})
	query = r.applyFilter(query, filter)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
