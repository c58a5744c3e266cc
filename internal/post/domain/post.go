package domain

import "time"

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	AuthorID  string    `json:"author_id" gorm:"index;not null"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostLike is one element of a post's like set. The composite primary key
// keeps the set free of duplicates even under concurrent toggles.
type PostLike struct {
	PostID string `gorm:"primaryKey"`
	UserID string `gorm:"primaryKey"`
}

type Author struct {
	ID       string
	Username string
	Parrot   string
}

// FeedPost is a post hydrated for one viewer: author resolved, like count
// computed, and Liked reflecting the viewer's own membership in the like set.
type FeedPost struct {
	ID        string
	Author    Author
	Message   string
	Liked     bool
	LikeCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}
