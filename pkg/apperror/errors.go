package apperror

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure the service surfaces to clients.
// Repositories and usecases translate low-level failures into these at their
// boundary; anything that does not match is treated as unknown.
var (
	ErrPostNotFound        = errors.New("post not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("a user with the same username already exists")
	ErrEditPostForbidden   = errors.New("you don't have the proper authorization to edit this post")
	ErrDeletePostForbidden = errors.New("you don't have the proper authorization to delete this post")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTokenMissing        = errors.New("authorization token is missing")
	ErrInvalidToken        = errors.New("authorization token is not valid")
)

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrEditPostForbidden), errors.Is(err, ErrDeletePostForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenMissing), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing description for err. Unanticipated
// failures collapse into a generic message so internals never leak.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "an unexpected error happened"
	}
	return err.Error()
}
