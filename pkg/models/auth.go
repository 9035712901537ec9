package models

// MagicLinkRequest asks for a sign-in link to be emailed.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses.
// IsAdmin is derived from the admin email allow-list, not stored.
type UserInfo struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}
