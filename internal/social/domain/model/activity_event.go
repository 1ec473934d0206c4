package model

import "time"

// ActivityEvent is one entry in a user's activity stream.
type ActivityEvent struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	ActorID   string            `json:"actorId"`
	SubjectID string            `json:"subjectId"`
	Payload   map[string]string `json:"payload,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
