package models

import "time"

// LocationTag represents a named, colored category attachable to events
// Table: location_tags
// Deleting a tag does not cascade to events that reference it.
type LocationTag struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Color     string    `gorm:"size:7;not null" json:"color"` // Hex color code like #3B82F6
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (LocationTag) TableName() string { return "location_tags" }

// LocationTagFilter represents filter criteria for location tag queries
type LocationTagFilter struct {
	ID   *string
	Name *string
}
