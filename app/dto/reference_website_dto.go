package dto

// CreateReferenceWebsiteRequest represents the request payload for creating a reference website
type CreateReferenceWebsiteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	URL   string `json:"url" validate:"required,url,max=2048"`
}

// UpdateReferenceWebsiteRequest represents the request payload for updating a reference website
type UpdateReferenceWebsiteRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	URL   *string `json:"url,omitempty" validate:"omitempty,url,max=2048"`
}

// ReferenceWebsiteResponse represents a single reference website in API responses
type ReferenceWebsiteResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}
