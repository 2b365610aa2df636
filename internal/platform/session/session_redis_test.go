package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry_backend/internal/feature/auth/domain/entity"
	"registry_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestSession creates a session entity for testing.
func createTestSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewSessionRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	assert.NotNil(t, repo, "repository is nil")
	assert.Equal(t, "session", repo.prefix)

	t.Run("empty prefix falls back to the default", func(t *testing.T) {
		repo := NewSessionRedis(client, "")
		assert.Equal(t, "session", repo.prefix)
	})
}

func TestSessionRedis_Create(t *testing.T) {
	t.Run("stores the session with a TTL", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, time.Hour)
		err := repo.Create(context.Background(), session)

		require.NoError(t, err, "failed to create session")
		assert.True(t, mr.Exists("session:sess-1"), "session key missing")
		assert.True(t, mr.Exists("session:user:1"), "user tracking set missing")

		ttl := mr.TTL("session:sess-1")
		assert.Greater(t, ttl, 59*time.Minute, "TTL should track the expiry")
	})

	t.Run("rejects an already expired session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, -time.Minute)
		err := repo.Create(context.Background(), session)

		assert.Error(t, err, "should reject expired session")
	})
}

func TestSessionRedis_FindByID(t *testing.T) {
	t.Run("round-trips a session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 7, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		found, err := repo.FindByID(context.Background(), "sess-1")

		require.NoError(t, err, "failed to find session")
		assert.Equal(t, uint(7), found.UserID, "user id does not match")
		assert.Equal(t, "test-agent", found.UserAgent, "user agent does not match")
		assert.True(t, found.IsValid(), "stored session should be valid")
	})

	t.Run("unknown id returns ErrSessionNotFound", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		found, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, found, "session should be nil")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("expired key returns ErrSessionNotFound", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, time.Minute)
		require.NoError(t, repo.Create(context.Background(), session))

		mr.FastForward(2 * time.Minute)

		_, err := repo.FindByID(context.Background(), "sess-1")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "expired key should read as absent")
	})
}

func TestSessionRedis_Extend(t *testing.T) {
	t.Run("updates value and key TTL together", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		newExpiry := time.Now().Add(4 * time.Hour)
		require.NoError(t, repo.Extend(context.Background(), "sess-1", newExpiry), "failed to extend")

		found, err := repo.FindByID(context.Background(), "sess-1")
		require.NoError(t, err)
		assert.WithinDuration(t, newExpiry, found.ExpiresAt, time.Second, "stored expiry was not updated")

		ttl := mr.TTL("session:sess-1")
		assert.Greater(t, ttl, 3*time.Hour, "key TTL should follow the new expiry")
	})

	t.Run("revoked session cannot be extended", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))
		require.NoError(t, repo.Revoke(context.Background(), "sess-1"))

		err := repo.Extend(context.Background(), "sess-1", time.Now().Add(4*time.Hour))

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_Revoke(t *testing.T) {
	t.Run("revoked session stays stored but invalid", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		session := createTestSession("sess-1", 1, time.Hour)
		require.NoError(t, repo.Create(context.Background(), session))

		require.NoError(t, repo.Revoke(context.Background(), "sess-1"), "failed to revoke")

		found, err := repo.FindByID(context.Background(), "sess-1")
		require.NoError(t, err, "revoked session should stay readable")
		assert.True(t, found.IsRevoked(), "session should be revoked")
		assert.False(t, found.IsValid(), "revoked session should be invalid")
	})

	t.Run("unknown session returns ErrSessionNotFound", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		err := repo.Revoke(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_CountByUserID(t *testing.T) {
	t.Run("counts active sessions and prunes expired ids", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, createTestSession("short", 1, time.Minute)))
		require.NoError(t, repo.Create(ctx, createTestSession("long-1", 1, time.Hour)))
		require.NoError(t, repo.Create(ctx, createTestSession("long-2", 1, time.Hour)))
		require.NoError(t, repo.Create(ctx, createTestSession("other", 2, time.Hour)))

		mr.FastForward(2 * time.Minute)

		count, err := repo.CountByUserID(ctx, 1)

		assert.NoError(t, err, "failed to count sessions")
		assert.Equal(t, int64(2), count, "expired session should not count")

		members, err := client.SMembers(ctx, "session:user:1").Result()
		require.NoError(t, err)
		assert.NotContains(t, members, "short", "stale id should be pruned from the set")
	})
}

func TestSessionRedis_DeleteOldestByUserID(t *testing.T) {
	t.Run("deletes the earliest created session", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")
		ctx := context.Background()

		oldest := createTestSession("oldest", 1, time.Hour)
		oldest.CreatedAt = time.Now().Add(-2 * time.Hour)
		require.NoError(t, repo.Create(ctx, oldest))
		require.NoError(t, repo.Create(ctx, createTestSession("newer", 1, time.Hour)))

		require.NoError(t, repo.DeleteOldestByUserID(ctx, 1), "failed to delete oldest")

		_, err := repo.FindByID(ctx, "oldest")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound, "oldest session should be gone")

		_, err = repo.FindByID(ctx, "newer")
		assert.NoError(t, err, "newer session should survive")
	})

	t.Run("no sessions is not an error", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewSessionRedis(client, "session")

		assert.NoError(t, repo.DeleteOldestByUserID(context.Background(), 42))
	})
}

func TestSessionRedis_DeleteExpired(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRedis(client, "session")

	deleted, err := repo.DeleteExpired(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, deleted, "Redis expires keys itself")
}
