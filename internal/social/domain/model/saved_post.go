package model

import "time"

// SavedPost is a join record linking a user to a post they saved. Deleting
// it removes the join only, never the post.
type SavedPost struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	PostID    string    `json:"postId" bson:"postId"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
