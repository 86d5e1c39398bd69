package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarMetadataRepositoryImpl implements CalendarMetadataRepository interface
type CalendarMetadataRepositoryImpl struct {
	*BaseRepository[models.CalendarMetadata, struct{}]
}

// NewCalendarMetadataRepository creates a new calendar metadata repository
func NewCalendarMetadataRepository(db *gorm.DB) CalendarMetadataRepository {
	return &CalendarMetadataRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CalendarMetadata, struct{}](db),
	}
}

// LastUpdated returns the calendar-wide last-updated timestamp, or nil when
// no content mutation has been recorded yet
func (r *CalendarMetadataRepositoryImpl) LastUpdated(ctx context.Context) (*time.Time, error) {
	db := r.getDB(ctx)

	var row models.CalendarMetadata
	err := db.Order("last_updated DESC").First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read calendar metadata: %w", err)
	}

	return &row.LastUpdated, nil
}

// Touch overwrites the last-updated timestamp with the current time.
// The table holds at most one row: existing rows are removed before insert.
func (r *CalendarMetadataRepositoryImpl) Touch(ctx context.Context) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	if err = db.Where("1 = 1").Delete(&models.CalendarMetadata{}).Error; err != nil {
		err = fmt.Errorf("failed to clear calendar metadata: %w", err)
		return err
	}

	row := models.CalendarMetadata{
		ID:          uuid.NewString(),
		LastUpdated: utils.UTCNow(),
	}
	if err = db.Create(&row).Error; err != nil {
		err = fmt.Errorf("failed to record calendar update: %w", err)
		return err
	}

	return nil
}
