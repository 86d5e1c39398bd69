// Package models contains domain entities and business models for the calendar system
package models

import "time"

// Event represents a single-date, non-recurring calendar event
// Table: events
// Dates are calendar dates serialized as YYYY-MM-DD with no time component.
// LocationTagID is a soft reference: a dangling value is treated as untagged.
type Event struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Date          string    `gorm:"size:10;not null;index:idx_events_date" json:"date"`
	Description   *string   `gorm:"type:text" json:"description"`
	ExternalLink  *string   `gorm:"type:text" json:"externalLink"`
	LocationTagID *string   `gorm:"size:36;index:idx_events_location_tag_id" json:"locationTagId"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_events_created_at" json:"-"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (Event) TableName() string { return "events" }

// EventFilter represents filter criteria for event queries
type EventFilter struct {
	ID            *string
	Date          *string
	LocationTagID *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
