package request

import (
	"bookstore-api/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RefreshToken may be omitted when the refresh token cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
