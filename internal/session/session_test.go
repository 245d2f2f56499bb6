// internal/session/session_test.go
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afcare-client/internal/common/logger"
)

func TestSession_RestoresStoredToken(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "tok-previous"))

	sess := New(store, logger.NewTestLogger(t))

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-previous", sess.Token())
}

func TestSession_StartsLoggedOutWithEmptyStore(t *testing.T) {
	sess := New(NewMemoryStore(), logger.NewTestLogger(t))
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token())
}

func TestSession_SetTokenPersists(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store, logger.NewTestLogger(t))

	require.NoError(t, sess.SetToken(context.Background(), "tok-new"))

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-new", stored)
}

func TestSession_InvalidateClearsTokenAndStore(t *testing.T) {
	store := NewMemoryStore()
	sess := New(store, logger.NewTestLogger(t))
	require.NoError(t, sess.SetToken(context.Background(), "tok"))

	sess.Invalidate(context.Background())

	assert.False(t, sess.Authenticated())
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSession_InvalidateRunsHookExactlyOnce(t *testing.T) {
	sess := New(NewMemoryStore(), logger.NewTestLogger(t))
	require.NoError(t, sess.SetToken(context.Background(), "tok"))

	var calls int64
	sess.OnLogout(func() { atomic.AddInt64(&calls, 1) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Invalidate(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestSession_SetTokenRearmsInvalidate(t *testing.T) {
	sess := New(NewMemoryStore(), logger.NewTestLogger(t))

	var calls int64
	sess.OnLogout(func() { atomic.AddInt64(&calls, 1) })

	ctx := context.Background()
	require.NoError(t, sess.SetToken(ctx, "tok-1"))
	sess.Invalidate(ctx)
	sess.Invalidate(ctx)

	require.NoError(t, sess.SetToken(ctx, "tok-2"))
	sess.Invalidate(ctx)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}
