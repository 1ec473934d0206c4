package model

import (
	"errors"
	"time"
)

var (
	ErrCommentTextRequired = errors.New("comment text is required")
	ErrCommentPostRequired = errors.New("comment post id is required")
)

// Comment is a comment document. The ID is generated client-side as a uuid
// and doubles as the store's document key.
type Comment struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"userId"`
	PostID      string    `json:"postId" bson:"postId"`
	CommentText string    `json:"commentText" bson:"commentText"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`

	// Author display data denormalized on read, never persisted.
	AuthorName   string `json:"authorName,omitempty" bson:"-"`
	AuthorAvatar string `json:"authorAvatar,omitempty" bson:"-"`
}

// ValidateFields checks required comment fields.
func (c *Comment) ValidateFields() error {
	if c.CommentText == "" {
		return ErrCommentTextRequired
	}
	if c.PostID == "" {
		return ErrCommentPostRequired
	}
	return nil
}
