package testing

import (
	"fmt"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/google/uuid"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	db *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{db: db}
}

// CreateTestLocationTag creates a location tag for testing
func (tf *TestFixtures) CreateTestLocationTag(name, color string) (*models.LocationTag, error) {
	tag := &models.LocationTag{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
	if err := tf.db.DB.Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create test location tag: %w", err)
	}
	return tag, nil
}

// CreateTestEvent creates an event on the given date for testing
func (tf *TestFixtures) CreateTestEvent(title, date string, tagID *string) (*models.Event, error) {
	event := &models.Event{
		ID:            uuid.NewString(),
		Title:         title,
		Date:          date,
		LocationTagID: tagID,
	}
	if err := tf.db.DB.Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create test event: %w", err)
	}
	return event, nil
}

// CreateTestReferenceWebsite creates a reference website for testing
func (tf *TestFixtures) CreateTestReferenceWebsite(title, url string) (*models.ReferenceWebsite, error) {
	site := &models.ReferenceWebsite{
		ID:    uuid.NewString(),
		Title: title,
		URL:   url,
	}
	if err := tf.db.DB.Create(site).Error; err != nil {
		return nil, fmt.Errorf("failed to create test reference website: %w", err)
	}
	return site, nil
}

// TouchCalendarMetadata records a last-updated row directly for testing
func (tf *TestFixtures) TouchCalendarMetadata() (*models.CalendarMetadata, error) {
	row := &models.CalendarMetadata{
		ID:          uuid.NewString(),
		LastUpdated: utils.UTCNow(),
	}
	if err := tf.db.DB.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create test calendar metadata: %w", err)
	}
	return row, nil
}
