// internal/session/session.go
package session

import (
	"context"
	"errors"
	"sync"

	"afcare-client/internal/common/logger"
	"afcare-client/internal/common/metrics"
)

// Session owns the auth token for one login and the forced-logout path.
// Every API request reads its own copy of the token immediately before
// sending; concurrent requests never contend beyond the read lock.
//
// Invalidate runs at most once per login: a burst of in-flight requests that
// all come back 401 clears the store and fires the logout hook a single time.
type Session struct {
	store  TokenStore
	logger logger.Logger

	mu         sync.RWMutex
	token      string
	invalidate *sync.Once
	onLogout   func()
}

func New(store TokenStore, log logger.Logger) *Session {
	s := &Session{
		store:      store,
		logger:     log.WithFields(map[string]interface{}{"component": "session"}),
		invalidate: &sync.Once{},
	}

	// Best effort restore of a previous login.
	if token, err := store.Load(context.Background()); err == nil {
		s.token = token
	} else if !errors.Is(err, ErrNoToken) {
		s.logger.Warn("failed to restore stored token", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return s
}

// OnLogout registers the hook run when a 401 forces a logout. In the
// dashboards this is the hard redirect to the login route.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// Token returns the caller's own copy of the current token, or "" when
// logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken records a fresh login and rearms the forced-logout guard.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.invalidate = &sync.Once{}
	s.mu.Unlock()

	return nil
}

// Invalidate clears the stored token and fires the logout hook. Safe to call
// from any number of concurrent request goroutines; only the first call per
// login does anything.
func (s *Session) Invalidate(ctx context.Context) {
	s.mu.RLock()
	once := s.invalidate
	s.mu.RUnlock()

	once.Do(func() {
		s.mu.Lock()
		s.token = ""
		hook := s.onLogout
		s.mu.Unlock()

		if err := s.store.Clear(ctx); err != nil {
			s.logger.Error("failed to clear stored token", map[string]interface{}{
				"error": err.Error(),
			})
		}

		metrics.SessionLogouts.Inc()
		s.logger.Info("session invalidated, forcing logout", nil)

		if hook != nil {
			hook()
		}
	})
}
