package response

import (
	"movie-review/internal/data/entity"
)

// UserResponse exposes public fields only; the password hash never
// leaves the service layer.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Email:    user.Email,
	}
}
