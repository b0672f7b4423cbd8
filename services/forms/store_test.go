package forms_test

import (
	"context"
	"testing"
	"time"

	"homemate/models"
	"homemate/services/forms"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*forms.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return forms.NewRedisSessionStore(client), s
}

func TestRedisSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	snap := &models.FormSnapshot{
		SessionID: "s1",
		Screen:    forms.ScreenLogin,
		Values:    map[string]string{"email": "sam@example.com"},
		Fields:    map[string]models.FieldState{"email": models.FieldValid},
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, forms.ScreenLogin, got.Screen)
	assert.Equal(t, "sam@example.com", got.Values["email"])
	assert.Equal(t, models.FieldValid, got.Fields["email"])
	assert.False(t, got.LastUpdatedAt.IsZero())
}

func TestRedisSessionStoreMissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found or expired")
}

func TestRedisSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	snap := &models.FormSnapshot{SessionID: "s1", Screen: forms.ScreenLogin, Values: map[string]string{}, Fields: map[string]models.FieldState{}}
	require.NoError(t, store.Save(ctx, snap))

	mr.FastForward(31 * time.Minute)

	_, err := store.Get(ctx, "s1")
	require.Error(t, err)
}

func TestRedisSessionStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	snap := &models.FormSnapshot{SessionID: "s1", Screen: forms.ScreenLogin, Values: map[string]string{}, Fields: map[string]models.FieldState{}}
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	require.Error(t, err)
}
