package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemstock/backend/internal/infrastructure/auth"
)

func TestInMemoryTokenBlacklist_AddToBlacklist(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.AddToBlacklist(ctx, "test-jti-1", 1*time.Hour)
	require.NoError(t, err)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "test-jti-1")
	require.NoError(t, err)
	assert.True(t, isBlacklisted)

	// A different JTI is not blacklisted
	isBlacklisted, err = blacklist.IsBlacklisted(ctx, "test-jti-2")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestInMemoryTokenBlacklist_ExpirationCleanup(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.AddToBlacklist(ctx, "test-jti-expire", 1*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Should no longer be blacklisted
	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "test-jti-expire")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestInMemoryTokenBlacklist_MultipleTokens(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		jti := "test-jti-" + string(rune('a'+i))
		err := blacklist.AddToBlacklist(ctx, jti, 1*time.Hour)
		require.NoError(t, err)
	}

	for i := 0; i < 10; i++ {
		jti := "test-jti-" + string(rune('a'+i))
		isBlacklisted, err := blacklist.IsBlacklisted(ctx, jti)
		require.NoError(t, err)
		assert.True(t, isBlacklisted, "token %s should be blacklisted", jti)
	}

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, "not-blacklisted")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)
}

func TestTokenBlacklist_Interface(t *testing.T) {
	var _ auth.TokenBlacklist = (*auth.InMemoryTokenBlacklist)(nil)
	var _ auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	var _ auth.TokenBlacklist = (*auth.RedisTokenBlacklist)(nil)
}
