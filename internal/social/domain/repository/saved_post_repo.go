package repository

import (
	"context"

	"snapfeed/internal/social/domain/model"
)

// SavedPostRepository is the port for saved-post join records.
type SavedPostRepository interface {
	Create(ctx context.Context, save *model.SavedPost) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*model.SavedPost, error)
	GetByUserAndPost(ctx context.Context, userID, postID string) (*model.SavedPost, error)
}
