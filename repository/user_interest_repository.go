package repository

import (
	"context"
	"fmt"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserInterestRepositoryImpl implements UserInterestRepository interface
type UserInterestRepositoryImpl struct {
	*BaseRepository[models.UserInterest, struct{}]
}

// NewUserInterestRepository creates a new user interest repository
func NewUserInterestRepository(db *gorm.DB) UserInterestRepository {
	return &UserInterestRepositoryImpl{
		BaseRepository: NewBaseRepository[models.UserInterest, struct{}](db),
	}
}

// EventIDsBySession lists the event IDs the given session has marked as interesting
func (r *UserInterestRepositoryImpl) EventIDsBySession(ctx context.Context, sessionID string) ([]string, error) {
	db := r.getDB(ctx)

	var ids []string
	err := db.Model(&models.UserInterest{}).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user interests: %w", err)
	}

	return ids, nil
}

// Toggle flips the interest mark for a session/event pair and reports the
// resulting state (true when the mark now exists)
func (r *UserInterestRepositoryImpl) Toggle(ctx context.Context, sessionID, eventID string) (bool, error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return false, err
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

	var existing models.UserInterest
	findErr := db.Where("session_id = ? AND event_id = ?", sessionID, eventID).First(&existing).Error
	if findErr != nil && findErr != gorm.ErrRecordNotFound {
		err = fmt.Errorf("failed to look up user interest: %w", findErr)
		return false, err
	}

	if findErr == nil {
		if err = db.Delete(&existing).Error; err != nil {
			err = fmt.Errorf("failed to remove user interest: %w", err)
			return false, err
		}
		return false, nil
	}

	row := models.UserInterest{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		EventID:   eventID,
	}
	if err = db.Create(&row).Error; err != nil {
		err = fmt.Errorf("failed to add user interest: %w", err)
		return false, err
	}

	return true, nil
}
