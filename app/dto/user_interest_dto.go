package dto

// ToggleInterestRequest represents the request payload for toggling an interest mark
type ToggleInterestRequest struct {
	EventID string `json:"eventId" validate:"required,max=36"`
}

// ToggleInterestResponse reports the resulting state of the interest mark
type ToggleInterestResponse struct {
	EventID    string `json:"eventId"`
	Interested bool   `json:"interested"`
}

// UserInterestsResponse lists the event IDs the current session marked
type UserInterestsResponse struct {
	EventIDs []string `json:"eventIds"`
}
