package redis

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func newSession(id, email string, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		ID:     id,
		UserID: "42",
		Email:  email,
		Token:  "api-token-" + id,
		Permissions: domainauth.Permissions{
			domainauth.PermViewFinancials: true,
			domainauth.PermManageAccess:   false,
		},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	session := newSession("test-session-1", "staff@kampus.com", 30*time.Minute)
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.Equal(t, session.Token, retrieved.Token)
	assert.True(t, retrieved.Permissions.Has(domainauth.PermViewFinancials))
	assert.False(t, retrieved.Permissions.Has(domainauth.PermManageAccess))
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("test-session-delete", "staff@kampus.com", 30*time.Minute)))

	_, err := store.Get(ctx, "test-session-delete")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "test-session-delete"))

	_, err = store.Get(ctx, "test-session-delete")
	assert.Equal(t, ErrNotFound, err)

	members := client.SMembers(ctx, "session:user:staff@kampus.com").Val()
	assert.NotContains(t, members, "test-session-delete")
}

func TestSessionStore_DeleteByEmail(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("a-1", "Ayse@Kampus.com", time.Hour)))
	require.NoError(t, store.Save(ctx, newSession("a-2", "ayse@kampus.com", time.Hour)))
	require.NoError(t, store.Save(ctx, newSession("b-1", "burak@kampus.com", time.Hour)))

	n, err := store.DeleteByEmail(ctx, "ayse@kampus.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = store.Get(ctx, "a-1")
	assert.Equal(t, ErrNotFound, err)
	_, err = store.Get(ctx, "a-2")
	assert.Equal(t, ErrNotFound, err)
	_, err = store.Get(ctx, "b-1")
	assert.NoError(t, err)

	n, err = store.DeleteByEmail(ctx, "nobody@kampus.com")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSessionStore_List(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("l-1", "one@kampus.com", time.Hour)))
	require.NoError(t, store.Save(ctx, newSession("l-2", "two@kampus.com", time.Hour)))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"l-1", "l-2"}, ids)
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("test-session-ttl", "staff@kampus.com", 100*time.Millisecond)))

	time.Sleep(200 * time.Millisecond)

	_, err := store.Get(ctx, "test-session-ttl")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("prefix-test", "staff@kampus.com", 30*time.Minute)))

	exists := client.Exists(ctx, "test-prefix:prefix-test").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, "prefix-test", retrieved.ID)
}

func TestSessionStore_SaveRejectsInvalid(t *testing.T) {
	// Validation happens before any Redis call.
	store := NewSessionStore(nil)
	ctx := context.Background()

	err := store.Save(ctx, newSession("", "staff@kampus.com", 30*time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")

	err = store.Save(ctx, newSession("expired-session", "staff@kampus.com", -time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")

	_, err = store.Get(ctx, "")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, store.Delete(ctx, ""))
}
