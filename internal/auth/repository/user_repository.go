package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	authdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/ident"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db  *gorm.DB
	ids *ident.Generator
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db:  db,
		ids: ident.NewGenerator(),
	}
}

func (r *userRepository) IsUsernameAvailable(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&authdomain.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check username availability: %w", err)
	}
	return count == 0, nil
}

func (r *userRepository) Create(user *authdomain.User) error {
	// Advisory pre-check; the unique index on username is what actually
	// guarantees uniqueness under concurrent sign-ups.
	available, err := r.IsUsernameAvailable(user.Username)
	if err != nil {
		return err
	}
	if !available {
		return apperror.ErrUserAlreadyExists
	}

	user.ID = r.ids.NewID()
	user.CreatedAt = time.Now()
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByUsername(username string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Authenticate(username, password string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, fmt.Errorf("authenticate user: %w", err)
	}
	return &user, nil
}
