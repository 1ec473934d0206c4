package usecase

import (
	"context"
	"time"

	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/domain/repository"
)

// ActivityDispatcher subscribes to social events and appends them to the
// recipient's activity stream. Persistence is best-effort: a failed append
// is logged and never fails the originating mutation.
type ActivityDispatcher struct {
	store repository.ActivityStore
	log   logger.Logger
}

// NewActivityDispatcher creates a dispatcher and registers its handlers on
// the bus.
func NewActivityDispatcher(bus *eventbus.EventBus, store repository.ActivityStore, log logger.Logger) *ActivityDispatcher {
	d := &ActivityDispatcher{
		store: store,
		log:   log.WithComponent("activity_dispatcher"),
	}

	bus.Subscribe(eventbus.EventTypeUserFollowed, d.handle)
	bus.Subscribe(eventbus.EventTypePostLiked, d.handle)
	bus.Subscribe(eventbus.EventTypeCommentCreated, d.handle)

	return d
}

func (d *ActivityDispatcher) handle(ctx context.Context, event eventbus.Event) error {
	payload, ok := event.Data().(map[string]string)
	if !ok {
		return nil
	}

	recipient := d.recipient(event.Type(), payload)
	if recipient == "" || recipient == payload["actorId"] {
		return nil
	}

	activity := &model.ActivityEvent{
		Type:      event.Type(),
		ActorID:   payload["actorId"],
		SubjectID: d.subject(event.Type(), payload),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.store.Append(ctx, recipient, activity); err != nil {
		d.log.Warnf("failed to append activity event %s for %s: %v", event.Type(), recipient, err)
	}
	return nil
}

// recipient picks whose stream the event lands on.
func (d *ActivityDispatcher) recipient(eventType string, payload map[string]string) string {
	switch eventType {
	case eventbus.EventTypeUserFollowed:
		return payload["targetId"]
	case eventbus.EventTypePostLiked:
		return payload["creatorId"]
	case eventbus.EventTypeCommentCreated:
		return payload["creatorId"]
	default:
		return ""
	}
}

func (d *ActivityDispatcher) subject(eventType string, payload map[string]string) string {
	switch eventType {
	case eventbus.EventTypeUserFollowed:
		return payload["targetId"]
	default:
		return payload["postId"]
	}
}
