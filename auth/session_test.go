package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/govista/govista-web/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	store := auth.NewStore(time.Hour, slog.Default())

	id := store.Create(auth.Session{Token: "user-token", Role: auth.RoleUser, Name: "Ana Reis"})
	require.NotEmpty(t, id)

	sess, found := store.Get(id)
	require.True(t, found)
	assert.Equal(t, "user-token", sess.Token)
	assert.False(t, sess.IsOperator())

	store.Delete(id)

	_, found = store.Get(id)
	assert.False(t, found)
}

func TestSessionExpiry(t *testing.T) {
	store := auth.NewStore(10*time.Millisecond, slog.Default())

	id := store.Create(auth.Session{Token: "user-token", Role: auth.RoleUser})

	time.Sleep(30 * time.Millisecond)

	_, found := store.Get(id)
	assert.False(t, found)
}

func TestTokenSource(t *testing.T) {

	t.Run("reads the session carried by the context", func(t *testing.T) {
		store := auth.NewStore(time.Hour, slog.Default())
		id := store.Create(auth.Session{Token: "user-token", AdminToken: "admin-token", Role: auth.RoleOperator})

		ctx := auth.ContextWithSessionID(context.Background(), id)
		user, admin := store.Tokens(ctx)

		assert.Equal(t, "user-token", user)
		assert.Equal(t, "admin-token", admin)
	})

	t.Run("no session id means no tokens", func(t *testing.T) {
		store := auth.NewStore(time.Hour, slog.Default())

		user, admin := store.Tokens(context.Background())

		assert.Empty(t, user)
		assert.Empty(t, admin)
	})

	t.Run("clear drops the session", func(t *testing.T) {
		store := auth.NewStore(time.Hour, slog.Default())
		id := store.Create(auth.Session{Token: "user-token", Role: auth.RoleUser})

		ctx := auth.ContextWithSessionID(context.Background(), id)
		store.Clear(ctx)

		_, found := store.Get(id)
		assert.False(t, found)

		user, admin := store.Tokens(ctx)
		assert.Empty(t, user)
		assert.Empty(t, admin)
	})
}
