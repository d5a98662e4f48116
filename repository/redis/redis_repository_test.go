package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryWithoutClient(t *testing.T) {
	repo := NewRepository(nil)

	require.NoError(t, repo.RevokeToken(context.Background(), "jti-1", time.Hour))

	revoked, err := repo.IsTokenRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeExpiredToken(t *testing.T) {
	repo := &redis{}
	assert.NoError(t, repo.RevokeToken(context.Background(), "jti-1", -time.Second))
}
