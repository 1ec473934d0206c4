package persistence

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"snapfeed/internal/shared/logger"
	"snapfeed/internal/social/domain/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const activityStreamPrefix = "activity:"

// RedisActivityStore implements ActivityStore using Redis Streams, one
// stream per recipient user.
type RedisActivityStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisActivityStore creates a new Redis-based activity store.
func NewRedisActivityStore(client *redis.Client, log logger.Logger) *RedisActivityStore {
	return &RedisActivityStore{
		client: client,
		logger: log,
	}
}

func streamName(userID string) string {
	return activityStreamPrefix + userID
}

// Append stores an activity event on the user's stream. The Redis message
// ID becomes the event ID.
func (r *RedisActivityStore) Append(ctx context.Context, userID string, event *model.ActivityEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		r.logger.Error("Failed to serialize activity payload", zap.Error(err))
		return err
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: streamName(userID),
		Values: map[string]interface{}{
			"type":      event.Type,
			"actorId":   event.ActorID,
			"subjectId": event.SubjectID,
			"payload":   payload,
			"timestamp": event.CreatedAt.UnixNano(),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to store activity event",
			zap.String("stream", streamName(userID)),
			zap.String("eventType", event.Type),
			zap.Error(err))
		return err
	}

	event.ID = id
	return nil
}

// Recent returns the newest events on the user's stream, newest first.
func (r *RedisActivityStore) Recent(ctx context.Context, userID string, limit int64) ([]*model.ActivityEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	msgs, err := r.client.XRevRangeN(ctx, streamName(userID), "+", "-", limit).Result()
	if err != nil {
		if err == redis.Nil {
			return []*model.ActivityEvent{}, nil
		}
		return nil, err
	}

	events := make([]*model.ActivityEvent, 0, len(msgs))
	for _, msg := range msgs {
		events = append(events, parseActivityMessage(msg))
	}
	return events, nil
}

// Subscribe blocks reading events appended after lastID, delivering each to
// the handler, until the context is cancelled.
func (r *RedisActivityStore) Subscribe(ctx context.Context, userID, lastID string, handler func(*model.ActivityEvent)) error {
	if lastID == "" {
		lastID = "$"
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := r.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{streamName(userID), lastID},
			Count:   100,
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Error("Failed to read activity stream",
				zap.String("stream", streamName(userID)),
				zap.Error(err))
			return err
		}

		for _, streamRes := range res {
			for _, msg := range streamRes.Messages {
				handler(parseActivityMessage(msg))
				lastID = msg.ID
			}
		}
	}
}

func parseActivityMessage(msg redis.XMessage) *model.ActivityEvent {
	event := &model.ActivityEvent{ID: msg.ID}

	if v, ok := msg.Values["type"].(string); ok {
		event.Type = v
	}
	if v, ok := msg.Values["actorId"].(string); ok {
		event.ActorID = v
	}
	if v, ok := msg.Values["subjectId"].(string); ok {
		event.SubjectID = v
	}
	if v, ok := msg.Values["timestamp"].(string); ok {
		if ns, err := strconv.ParseInt(v, 10, 64); err == nil {
			event.CreatedAt = time.Unix(0, ns)
		}
	}
	if v, ok := msg.Values["payload"].(string); ok && v != "" && v != "null" {
		var payload map[string]string
		if err := json.Unmarshal([]byte(v), &payload); err == nil {
			event.Payload = payload
		}
	}

	return event
}
