package dto

// CreateLocationTagRequest represents the request payload for creating a location tag
type CreateLocationTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100" example:"中央区"`
	Color string `json:"color" validate:"required,hexcolor" example:"#3B82F6"`
}

// UpdateLocationTagRequest represents the request payload for updating a location tag
type UpdateLocationTagRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// LocationTagResponse represents a single location tag in API responses
type LocationTagResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
