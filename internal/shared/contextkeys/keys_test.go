package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "snapfeed context key userID", UserIDKey.String())
	assert.Equal(t, "snapfeed context key accountID", AccountIDKey.String())
}

func TestContextKeys_DoNotCollideWithStringKeys(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, UserIDKey, "user-1")

	// A plain string key with the same literal must not read the typed key's value.
	assert.Nil(t, ctx.Value("userID"))
	assert.Equal(t, "user-1", ctx.Value(UserIDKey))
}

func TestContextKeys_AreDistinct(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
	ctx = context.WithValue(ctx, AccountIDKey, "account-1")

	assert.Equal(t, "user-1", ctx.Value(UserIDKey))
	assert.Equal(t, "account-1", ctx.Value(AccountIDKey))
	assert.Nil(t, ctx.Value(UserEmailKey))
}
