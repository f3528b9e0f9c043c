package auth

import (
	"context"
	"testing"
	"time"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/kampus/admin-console/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAuthenticator_Accounts(t *testing.T) {
	a := NewMockAuthenticator()
	a.AddAccount(domainauth.Identity{UserID: "1", Email: "Ops@Kampus.com", Token: "t", Active: true}, "secret1")
	ctx := context.Background()

	id, err := a.Login(ctx, ports.LoginInput{Email: " ops@kampus.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "t", id.Token)

	_, err = a.Login(ctx, ports.LoginInput{Email: "ops@kampus.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)
	assert.Equal(t, 2, a.Calls())
}

func TestMockAuthenticator_CustomFunc(t *testing.T) {
	a := &MockAuthenticator{
		LoginFunc: func(_ context.Context, in ports.LoginInput) (domainauth.Identity, error) {
			return domainauth.Identity{Email: in.Email}, nil
		},
	}
	id, err := a.Login(context.Background(), ports.LoginInput{Email: "x@y.co"})
	require.NoError(t, err)
	assert.Equal(t, "x@y.co", id.Email)
}

func TestMemorySessionStore_CRUD(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "s1",
		Email:     "a@kampus.com",
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Error(t, store.Save(ctx, domainauth.Session{}))
	_, err = store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestMemorySessionStore_DeleteByEmail(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "a", Email: "x@kampus.com"}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "b", Email: "X@kampus.com"}))
	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "c", Email: "y@kampus.com"}))

	n, err := store.DeleteByEmail(ctx, "x@kampus.com")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, store.Len())
}
