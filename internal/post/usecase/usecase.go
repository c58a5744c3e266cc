package usecase

import (
	"context"

	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/dto"
)

// PostUsecase defines the post operations. The verified caller identity is
// always the first parameter, threaded explicitly from the delivery layer.
type PostUsecase interface {
	CreatePost(userID, message string) (*dto.PostResponse, error)
	GetPost(userID, postID string) (*dto.PostResponse, error)
	GetPosts(userID, lastPostID string) (*dto.PostsResponse, error)
	GetMyPosts(userID, lastPostID string) (*dto.PostsResponse, error)
	EditPost(userID, postID, message string) (*dto.PostResponse, error)
	DeletePost(userID, postID string) error
	SwapLikePost(userID, postID string) (*dto.PostResponse, error)

	// WatchPost streams the post until ctx is cancelled or the post is
	// deleted
	WatchPost(ctx context.Context, userID, postID string) (<-chan *dto.PostResponse, error)
}
