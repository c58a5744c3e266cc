package dto

import authdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Birthday string `json:"birthday"`
	Parrot   string `json:"parrot"`
}

type CheckUsernameAvailabilityRequest struct {
	Username string `json:"username" binding:"required"`
}

type CheckUsernameAvailabilityResponse struct {
	IsAvailable bool `json:"is_available"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Birthday string `json:"birthday"`
}

type SignInResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func NewUserResponse(user *authdomain.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Birthday: user.Birthday,
	}
}
