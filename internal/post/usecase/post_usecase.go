package usecase

import (
	"context"

	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/dto"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/repository"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
	cfg      *config.Config
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository, cfg *config.Config) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		cfg:      cfg,
	}
}

func (u *postUsecase) CreatePost(userID, message string) (*dto.PostResponse, error) {
	post, err := u.postRepo.Create(userID, message)
	if err != nil {
		return nil, err
	}
	return dto.NewPostResponse(post), nil
}

func (u *postUsecase) GetPost(userID, postID string) (*dto.PostResponse, error) {
	post, err := u.postRepo.Get(postID, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewPostResponse(post), nil
}

func (u *postUsecase) GetPosts(userID, lastPostID string) (*dto.PostsResponse, error) {
	posts, err := u.postRepo.ListFeed(lastPostID, userID)
	if err != nil {
		return nil, err
	}
	return newPostsResponse(posts, u.cfg.FeedPageLimit), nil
}

func (u *postUsecase) GetMyPosts(userID, lastPostID string) (*dto.PostsResponse, error) {
	posts, err := u.postRepo.ListAuthorFeed(lastPostID, userID, userID)
	if err != nil {
		return nil, err
	}
	return newPostsResponse(posts, u.cfg.AuthorFeedPageLimit), nil
}

func (u *postUsecase) EditPost(userID, postID, message string) (*dto.PostResponse, error) {
	// Ownership lives here, not in the store: the store stays reusable by
	// privileged callers.
	post, err := u.postRepo.Get(postID, userID)
	if err != nil {
		return nil, err
	}
	if post.Author.ID != userID {
		return nil, apperror.ErrEditPostForbidden
	}

	if err := u.postRepo.Edit(postID, message); err != nil {
		return nil, err
	}
	return u.GetPost(userID, postID)
}

func (u *postUsecase) DeletePost(userID, postID string) error {
	post, err := u.postRepo.Get(postID, userID)
	if err != nil {
		return err
	}
	if post.Author.ID != userID {
		return apperror.ErrDeletePostForbidden
	}
	return u.postRepo.Delete(postID)
}

func (u *postUsecase) SwapLikePost(userID, postID string) (*dto.PostResponse, error) {
	if err := u.postRepo.ToggleLike(postID, userID); err != nil {
		return nil, err
	}
	// Re-read so the response carries the caller's new like state.
	return u.GetPost(userID, postID)
}

func (u *postUsecase) WatchPost(ctx context.Context, userID, postID string) (<-chan *dto.PostResponse, error) {
	updates, err := u.postRepo.Watch(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	out := make(chan *dto.PostResponse)
	go func() {
		defer close(out)
		for post := range updates {
			select {
			case out <- dto.NewPostResponse(post):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func newPostsResponse(posts []*domain.FeedPost, maxSize int) *dto.PostsResponse {
	page := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		page = append(page, dto.NewPostResponse(post))
	}
	return &dto.PostsResponse{
		Posts:        page,
		PostsMaxSize: maxSize,
		PostsSize:    len(page),
	}
}
