package dto

import (
	"time"

	postdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
)

type CreatePostRequest struct {
	Message string `json:"message" binding:"required"`
}

type PostRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

type EditPostRequest struct {
	PostID  string `json:"post_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type PostsRequest struct {
	LastPostID string `json:"last_post_id"`
}

// Timestamp mirrors the wire representation of instants: seconds plus
// nanoseconds since epoch.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Parrot   string `json:"parrot"`
}

type PostResponse struct {
	ID        string         `json:"id"`
	Author    AuthorResponse `json:"author"`
	Message   string         `json:"message"`
	Like      bool           `json:"like"`
	Likes     int            `json:"likes"`
	CreatedAt Timestamp      `json:"created_at"`
	UpdatedAt Timestamp      `json:"updated_at"`
}

type PostsResponse struct {
	Posts        []*PostResponse `json:"posts"`
	PostsMaxSize int             `json:"posts_max_size"`
	PostsSize    int             `json:"posts_size"`
}

func NewPostResponse(post *postdomain.FeedPost) *PostResponse {
	return &PostResponse{
		ID: post.ID,
		Author: AuthorResponse{
			ID:       post.Author.ID,
			Username: post.Author.Username,
			Parrot:   post.Author.Parrot,
		},
		Message:   post.Message,
		Like:      post.Liked,
		Likes:     post.LikeCount,
		CreatedAt: NewTimestamp(post.CreatedAt),
		UpdatedAt: NewTimestamp(post.UpdatedAt),
	}
}
