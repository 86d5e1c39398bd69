package dto

// AdminLoginRequest represents the request payload for admin login
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// AdminStatusResponse reports whether the current session holds admin rights
type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
