package usecase

import (
	"errors"
	"fmt"

	authdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"
	authdto "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/dto"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/repository"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, codec *token.Codec) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		codec:    codec,
	}
}

func (u *authUsecase) SignIn(req *authdto.SignInRequest) (*authdto.SignInResponse, error) {
	user, err := u.userRepo.Authenticate(req.Username, req.Password)
	if err != nil {
		// An absent record and a wrong password are indistinguishable on
		// purpose.
		if errors.Is(err, apperror.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	signed, err := u.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &authdto.SignInResponse{
		Token: signed,
		User:  authdto.NewUserResponse(user),
	}, nil
}

func (u *authUsecase) SignUp(req *authdto.SignUpRequest) error {
	user := &authdomain.User{
		Username: req.Username,
		Password: req.Password,
		Birthday: req.Birthday,
		Parrot:   req.Parrot,
	}
	return u.userRepo.Create(user)
}

func (u *authUsecase) CheckUsernameAvailability(username string) (bool, error) {
	return u.userRepo.IsUsernameAvailable(username)
}
