package models

import "time"

// ReferenceWebsite represents an admin-curated external link, independent of events
// Table: reference_websites
type ReferenceWebsite struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (ReferenceWebsite) TableName() string { return "reference_websites" }

// ReferenceWebsiteFilter represents filter criteria for reference website queries
type ReferenceWebsiteFilter struct {
	ID    *string
	Title *string
}
