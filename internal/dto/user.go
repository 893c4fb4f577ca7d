package dto

import (
	"github.com/yonchee/conduit-api/internal/models"
)

// UserDTO represents the authenticated user in API responses
type UserDTO struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
	Token    string  `json:"token,omitempty"`
}

// UserResponse wraps a user in the envelope the API promises
type UserResponse struct {
	User UserDTO `json:"user"`
}

// ProfileDTO represents a public profile in API responses
type ProfileDTO struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}

// ProfileResponse wraps a profile in the envelope the API promises
type ProfileResponse struct {
	Profile ProfileDTO `json:"profile"`
}

// ToUserResponse converts a User model to a UserResponse, attaching the token
// when one was issued for this request.
func ToUserResponse(user models.User, token string) UserResponse {
	return UserResponse{
		User: UserDTO{
			Email:    user.Email,
			Username: user.Username,
			Bio:      user.Bio,
			Image:    user.Image,
			Token:    token,
		},
	}
}

// ToProfileResponse converts a User model to its public profile view.
// Following is always false: the follow feature is out of scope.
func ToProfileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		Profile: ProfileDTO{
			Username:  user.Username,
			Bio:       user.Bio,
			Image:     user.Image,
			Following: false,
		},
	}
}
