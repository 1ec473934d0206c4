package model

import (
	"errors"
	"time"
)

var (
	ErrProfileNameRequired  = errors.New("profile name is required")
	ErrProfileEmailRequired = errors.New("profile email is required")
)

// Profile is a user's social profile document. It is distinct from the auth
// account: AccountID references the identity record, ID is the document key
// everything social hangs off.
//
// Soft invariant: if A's FollowingID contains B, B's FollowerID should
// contain A. A partial failure between the two writes can leave the lists
// out of step; nothing reconciles them afterwards.
type Profile struct {
	ID          string    `json:"id" bson:"_id"`
	AccountID   string    `json:"accountId" bson:"accountId"`
	Name        string    `json:"name" bson:"name"`
	Username    string    `json:"username" bson:"username"`
	Email       string    `json:"email" bson:"email"`
	Bio         string    `json:"bio" bson:"bio,omitempty"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl,omitempty"`
	ImageID     string    `json:"imageId" bson:"imageId,omitempty"`
	FollowingID []string  `json:"followingId" bson:"followingId,omitempty"`
	FollowerID  []string  `json:"followerId" bson:"followerId,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateFields checks required profile fields.
func (p *Profile) ValidateFields() error {
	if p.Name == "" {
		return ErrProfileNameRequired
	}
	if p.Email == "" {
		return ErrProfileEmailRequired
	}
	return nil
}

// IsFollowing reports whether the profile's following list contains userID.
func (p *Profile) IsFollowing(userID string) bool {
	for _, id := range p.FollowingID {
		if id == userID {
			return true
		}
	}
	return false
}

// FollowerCount returns the length of the follower list. A missing list
// counts as zero.
func (p *Profile) FollowerCount() int {
	return len(p.FollowerID)
}

// FollowingCount returns the length of the following list.
func (p *Profile) FollowingCount() int {
	return len(p.FollowingID)
}
