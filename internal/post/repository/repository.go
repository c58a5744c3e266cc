package repository

import (
	"context"

	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
)

// PostRepository defines the interface for post data access. All reads are
// hydrated for the given viewer. Ownership is deliberately not checked here;
// that is the caller's responsibility.
type PostRepository interface {
	// Create persists a new post and returns it hydrated for its author
	Create(authorID, message string) (*domain.FeedPost, error)

	// Get returns one post hydrated for viewerID; a malformed or unknown id
	// fails with apperror.ErrPostNotFound
	Get(postID, viewerID string) (*domain.FeedPost, error)

	// Edit replaces the message and advances updated_at
	Edit(postID, message string) error

	// Delete removes the post and its like set
	Delete(postID string) error

	// ToggleLike adds viewerID to the like set if absent, removes it if
	// present
	ToggleLike(postID, viewerID string) error

	// ListFeed returns up to the configured page size of posts strictly older
	// than lastPostID (or the newest page when lastPostID is empty),
	// descending by id
	ListFeed(lastPostID, viewerID string) ([]*domain.FeedPost, error)

	// ListAuthorFeed is ListFeed restricted to one author, with its own page
	// size
	ListAuthorFeed(lastPostID, authorID, viewerID string) ([]*domain.FeedPost, error)

	// Watch polls the post and sends it on the returned channel: once
	// immediately as a baseline, then only when message or like set change.
	// The channel closes when ctx is cancelled or the post disappears.
	Watch(ctx context.Context, postID, viewerID string) (<-chan *domain.FeedPost, error)
}
