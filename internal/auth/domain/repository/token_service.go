package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for token operations
type TokenService interface {
	GenerateToken(ctx context.Context, accountID, userID, email string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents JWT claims. UserID is the social profile document ID so
// downstream handlers can resolve the caller without an extra lookup.
type Claims struct {
	AccountID string `json:"accountID"`
	UserID    string `json:"userID"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
