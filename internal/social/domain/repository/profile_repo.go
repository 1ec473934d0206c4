package repository

import (
	"context"

	"snapfeed/internal/social/domain/model"
)

// ProfileRepository is the port for profile documents.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByAccountID(ctx context.Context, accountID string) (*model.Profile, error)
	List(ctx context.Context, limit int64) ([]*model.Profile, error)
	Search(ctx context.Context, term string, limit int64) ([]*model.Profile, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*model.Profile, error)

	// AddFollowing / RemoveFollowing and AddFollower / RemoveFollower are
	// atomic set operations on the respective list fields. They never
	// read-modify-write the whole list.
	AddFollowing(ctx context.Context, profileID, targetID string) error
	RemoveFollowing(ctx context.Context, profileID, targetID string) error
	AddFollower(ctx context.Context, profileID, followerID string) error
	RemoveFollower(ctx context.Context, profileID, followerID string) error
}
