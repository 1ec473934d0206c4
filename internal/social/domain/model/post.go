package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrPostCreatorRequired = errors.New("post creator is required")
	ErrPostImageRequired   = errors.New("post image is required")
)

// Post is a feed post document. Likes is a list of profile IDs with set
// semantics, maintained with atomic set operations rather than list rewrites.
type Post struct {
	ID        string    `json:"id" bson:"_id"`
	Creator   string    `json:"creator" bson:"creator"`
	Caption   string    `json:"caption" bson:"caption,omitempty"`
	ImageURL  string    `json:"imageUrl" bson:"imageUrl"`
	ImageID   string    `json:"imageId" bson:"imageId"`
	Location  string    `json:"location" bson:"location,omitempty"`
	Tags      []string  `json:"tags" bson:"tags,omitempty"`
	Likes     []string  `json:"likes" bson:"likes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateFields checks required post fields.
func (p *Post) ValidateFields() error {
	if p.Creator == "" {
		return ErrPostCreatorRequired
	}
	if p.ImageID == "" {
		return ErrPostImageRequired
	}
	return nil
}

// LikedBy reports whether userID is in the likes set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ParseTags splits a comma-separated tag string into trimmed tags. Empty
// entries are dropped.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
