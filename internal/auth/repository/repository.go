package repository

import (
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// IsUsernameAvailable reports whether no user holds the given username
	IsUsernameAvailable(username string) (bool, error)

	// Create inserts a new user, assigning its id; fails with
	// apperror.ErrUserAlreadyExists when the username is taken
	Create(user *domain.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*domain.User, error)

	// FindByID finds a user by its ID
	FindByID(id string) (*domain.User, error)

	// Authenticate returns the user matching both username and password
	// exactly; fails with apperror.ErrUserNotFound otherwise
	Authenticate(username, password string) (*domain.User, error)
}
