package models

import "time"

// UserInterest marks an anonymous session as interested in an event
// Table: user_interests
// One row per (session, event) pair; toggling removes or recreates the row.
type UserInterest struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID string    `gorm:"size:64;not null;index:idx_user_interests_session_id;uniqueIndex:uk_user_interests_session_event" json:"sessionId"`
	EventID   string    `gorm:"size:36;not null;uniqueIndex:uk_user_interests_session_event" json:"eventId"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`
}

func (UserInterest) TableName() string { return "user_interests" }

// UserInterestFilter represents filter criteria for user interest queries
type UserInterestFilter struct {
	SessionID *string
	EventID   *string
}
