package repository

import (
	"context"

	"snapfeed/internal/social/domain/model"
)

// CommentRepository is the port for comment documents.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	List(ctx context.Context) ([]*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
	UpdateText(ctx context.Context, id, text string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}
