package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	authrepo "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/repository"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/ident"
)

// postRepository implements PostRepository interface
type postRepository struct {
	db    *gorm.DB
	users authrepo.UserRepository
	ids   *ident.Generator

	feedPageLimit       int
	authorFeedPageLimit int
	watchInterval       time.Duration
}

// NewPostRepository creates a new instance of postRepository
func NewPostRepository(db *gorm.DB, users authrepo.UserRepository, cfg *config.Config) PostRepository {
	return &postRepository{
		db:                  db,
		users:               users,
		ids:                 ident.NewGenerator(),
		feedPageLimit:       cfg.FeedPageLimit,
		authorFeedPageLimit: cfg.AuthorFeedPageLimit,
		watchInterval:       cfg.WatchInterval,
	}
}

func (r *postRepository) Create(authorID, message string) (*domain.FeedPost, error) {
	now := time.Now()
	post := &domain.Post{
		ID:        r.ids.NewID(),
		AuthorID:  authorID,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return r.hydrate(post, authorID)
}

func (r *postRepository) Get(postID, viewerID string) (*domain.FeedPost, error) {
	var post domain.Post
	err := r.db.Where("id = ?", postID).First(&post).Error
	if err != nil {
		// A malformed id matches nothing, so it lands here as well.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return r.hydrate(&post, viewerID)
}

func (r *postRepository) Edit(postID, message string) error {
	result := r.db.Model(&domain.Post{}).
		Where("id = ?", postID).
		Updates(map[string]any{
			"message":    message,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("edit post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(postID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", postID).Delete(&domain.Post{})
		if result.Error != nil {
			return fmt.Errorf("delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperror.ErrPostNotFound
		}
		if err := tx.Where("post_id = ?", postID).Delete(&domain.PostLike{}).Error; err != nil {
			return fmt.Errorf("delete post likes: %w", err)
		}
		return nil
	})
}

func (r *postRepository) ToggleLike(postID, viewerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post domain.Post
		if err := tx.Where("id = ?", postID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrPostNotFound
			}
			return fmt.Errorf("find post: %w", err)
		}

		// Membership decides the direction of the toggle; the composite
		// primary key on post_likes keeps a racing duplicate add from ever
		// producing two rows.
		var like domain.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, viewerID).First(&like).Error
		switch {
		case err == nil:
			return tx.Where("post_id = ? AND user_id = ?", postID, viewerID).Delete(&domain.PostLike{}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&domain.PostLike{PostID: postID, UserID: viewerID}).Error
		default:
			return fmt.Errorf("find like: %w", err)
		}
	})
}

func (r *postRepository) ListFeed(lastPostID, viewerID string) ([]*domain.FeedPost, error) {
	return r.listPage(lastPostID, viewerID, r.feedPageLimit, nil)
}

func (r *postRepository) ListAuthorFeed(lastPostID, authorID, viewerID string) ([]*domain.FeedPost, error) {
	return r.listPage(lastPostID, viewerID, r.authorFeedPageLimit, &authorID)
}

func (r *postRepository) listPage(lastPostID, viewerID string, limit int, authorID *string) ([]*domain.FeedPost, error) {
	query := r.db.Order("id DESC").Limit(limit)
	if lastPostID != "" {
		if !ident.Valid(lastPostID) {
			return nil, apperror.ErrPostNotFound
		}
		query = query.Where("id < ?", lastPostID)
	}
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
	}

	var posts []domain.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	page := make([]*domain.FeedPost, 0, len(posts))
	for i := range posts {
		hydrated, err := r.hydrate(&posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		page = append(page, hydrated)
	}
	return page, nil
}

func (r *postRepository) Watch(ctx context.Context, postID, viewerID string) (<-chan *domain.FeedPost, error) {
	last, err := r.Get(postID, viewerID)
	if err != nil {
		return nil, err
	}

	updates := make(chan *domain.FeedPost, 1)
	updates <- last // baseline emit

	go func() {
		defer close(updates)
		ticker := time.NewTicker(r.watchInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, err := r.Get(postID, viewerID)
				if err != nil {
					// Post gone (or unreadable): closing the channel is the
					// terminal signal of the subscription.
					return
				}
				if current.Message == last.Message && current.LikeCount == last.LikeCount && current.Liked == last.Liked {
					continue
				}
				last = current
				select {
				case updates <- current:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}

// hydrate resolves the author and computes the viewer-dependent like fields.
// A post whose author no longer resolves reads as not found.
func (r *postRepository) hydrate(post *domain.Post, viewerID string) (*domain.FeedPost, error) {
	author, err := r.users.FindByID(post.AuthorID)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			return nil, apperror.ErrPostNotFound
		}
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	var likeCount int64
	if err := r.db.Model(&domain.PostLike{}).Where("post_id = ?", post.ID).Count(&likeCount).Error; err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	var viewerLikes int64
	if err := r.db.Model(&domain.PostLike{}).Where("post_id = ? AND user_id = ?", post.ID, viewerID).Count(&viewerLikes).Error; err != nil {
		return nil, fmt.Errorf("check viewer like: %w", err)
	}

	return &domain.FeedPost{
		ID: post.ID,
		Author: domain.Author{
			ID:       author.ID,
			Username: author.Username,
			Parrot:   author.Parrot,
		},
		Message:   post.Message,
		Liked:     viewerLikes > 0,
		LikeCount: int(likeCount),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}, nil
}
