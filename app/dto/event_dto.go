package dto

// CreateEventRequest represents the request payload for creating an event
type CreateEventRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255" example:"花火大会"`
	Date          string  `json:"date" validate:"required,calendar_date" example:"2025-08-15"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ExternalLink  *string `json:"externalLink,omitempty" validate:"omitempty,url,max=2048"`
	LocationTagID *string `json:"locationTagId,omitempty" validate:"omitempty,max=36"`
}

// UpdateEventRequest represents the request payload for updating an event.
// Omitted fields keep their stored values.
type UpdateEventRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Date          *string `json:"date,omitempty" validate:"omitempty,calendar_date"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ExternalLink  *string `json:"externalLink,omitempty" validate:"omitempty,url,max=2048"`
	LocationTagID *string `json:"locationTagId,omitempty" validate:"omitempty,max=36"`
}

// EventResponse represents a single event in API responses
type EventResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Date          string  `json:"date"`
	Description   *string `json:"description"`
	ExternalLink  *string `json:"externalLink"`
	LocationTagID *string `json:"locationTagId"`
}

// ShareTextResponse carries the formatted share text for one event
type ShareTextResponse struct {
	EventID string `json:"eventId"`
	Text    string `json:"text"`
}
