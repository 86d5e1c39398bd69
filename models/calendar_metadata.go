package models

import "time"

// CalendarMetadata tracks the single "last updated" timestamp for the calendar.
// Table: calendar_metadata
// The row is overwritten (delete-all + insert) on every successful mutation of
// events, location tags or reference websites, so clients always read at most
// one current value.
type CalendarMetadata struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	LastUpdated time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"lastUpdated"`
}

func (CalendarMetadata) TableName() string { return "calendar_metadata" }

// CalendarMetadataFilter represents filter criteria for metadata queries
type CalendarMetadataFilter struct {
	ID *string
}
