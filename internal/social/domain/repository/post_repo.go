package repository

import (
	"context"

	"snapfeed/internal/social/domain/model"
)

// PostRepository is the port for post documents.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Post, error)
	Delete(ctx context.Context, id string) error

	// Like set operations are atomic set-add / set-remove on the likes field.
	AddLike(ctx context.Context, postID, userID string) (*model.Post, error)
	RemoveLike(ctx context.Context, postID, userID string) (*model.Post, error)

	ListRecent(ctx context.Context, limit int64) ([]*model.Post, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Post, error)
	Search(ctx context.Context, term string, limit int64) ([]*model.Post, error)
	ListAfter(ctx context.Context, cursor string, limit int64) ([]*model.Post, error)
}
