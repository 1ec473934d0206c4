package repository

import (
	"context"

	"snapfeed/internal/social/domain/model"
)

// ActivityStore is the port for per-user activity streams. Writes are
// best-effort: callers log failures and never fail the originating mutation.
type ActivityStore interface {
	Append(ctx context.Context, userID string, event *model.ActivityEvent) error
	Recent(ctx context.Context, userID string, limit int64) ([]*model.ActivityEvent, error)
	// Subscribe blocks reading events appended after lastID until ctx is
	// cancelled, delivering them to the handler.
	Subscribe(ctx context.Context, userID, lastID string, handler func(*model.ActivityEvent)) error
}
