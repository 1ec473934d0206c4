package model

import (
	"errors"
	"time"
)

// Validation errors shared by account and session models.
var (
	ErrEmailRequired = errors.New("email is required")
	ErrNameRequired  = errors.New("name is required")
)

// Session represents an authenticated session backed by a store document with
// a TTL index on ExpiresAt.
type Session struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AccountID string    `json:"account_id" bson:"account_id"`
	Token     string    `json:"token" bson:"token"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
