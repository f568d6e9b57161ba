package dto

// AuthStatusResponse matches the /api/auth/me payload.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// LoginRequest carries portal credentials. The backend consumes it as a
// form-encoded body, not JSON.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
