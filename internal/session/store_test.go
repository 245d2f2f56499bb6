// internal/session/store_test.go
package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afcare-client/internal/common/config"
)

func configFor(store, path string) config.SessionConfig {
	return config.SessionConfig{Store: store, FilePath: path}
}

// ==========================
// Memory Store Tests
// ==========================

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-1"))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

// ==========================
// File Store Tests
// ==========================

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-file"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-file", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Clear(context.Background()))
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-ws\n"), 0o600))

	token, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-ws", token)
}

// ==========================
// Redis Store Tests
// ==========================

func setupMiniredisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "test:session:token"), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := setupMiniredisStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save(ctx, "tok-redis"))
	assert.True(t, mr.Exists("test:session:token"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-redis", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_TokenExpires(t *testing.T) {
	store, mr := setupMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-ttl"))

	ttl := mr.TTL("test:session:token")
	assert.Equal(t, 24*time.Hour, ttl)

	mr.FastForward(25 * time.Hour)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_DefaultKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, "")
	require.NoError(t, store.Save(context.Background(), "tok"))
	assert.True(t, mr.Exists("afcare:session:token"))
}

func TestRedisStore_LoadFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, "test:session:token")

	mock.ExpectGet("test:session:token").SetErr(errors.New("connection refused"))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SaveFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, "test:session:token")

	mock.ExpectSet("test:session:token", "tok", 24*time.Hour).SetErr(errors.New("readonly replica"))

	err := store.Save(context.Background(), "tok")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Store Selection Tests
// ==========================

func TestFromConfig(t *testing.T) {
	store, err := FromConfig(configFor("memory", ""))
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = FromConfig(configFor("file", filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = FromConfig(configFor("vault", ""))
	assert.Error(t, err)
}
