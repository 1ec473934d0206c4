package model

import (
	"strings"
	"time"
)

// Account is the identity record held by the auth module. It is distinct from
// the social profile document; profiles reference it by AccountID.
type Account struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidateFields checks the invariant fields of an account.
func (a *Account) ValidateFields() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
