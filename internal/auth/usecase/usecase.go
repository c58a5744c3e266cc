package usecase

import (
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/dto"
)

// AuthUsecase defines the authentication and registration operations
type AuthUsecase interface {
	// SignIn authenticates a user and issues a bearer token
	SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error)

	// SignUp registers a new user
	SignUp(req *dto.SignUpRequest) error

	// CheckUsernameAvailability reports whether a username is still free
	CheckUsernameAvailability(username string) (bool, error)
}
