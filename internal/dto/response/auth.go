package response

import (
	"time"

	"shop-loyalty/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Points    int             `json:"points"`
	CreatedAt time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Points:    user.Points,
		CreatedAt: user.CreatedAt,
	}
}
