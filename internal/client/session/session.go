// Package session owns the authenticated-user state of the client: the
// bearer token and the current user profile, both persisted in the local
// state store and restored on startup.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/novakart/storefront/internal/client/models"
	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/logging"
)

// userFetcher is the slice of the API client bootstrap needs.
type userFetcher interface {
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

// Store holds the session. It is safe for concurrent use; the logout
// path collapses concurrent authentication failures into a single
// forced logout per session generation.
type Store struct {
	states state.Repository
	log    logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User

	logoutOnce     *sync.Once
	onForcedLogout func()
}

func NewStore(states state.Repository, log logging.Logger) *Store {
	return &Store{
		states:     states,
		log:        log,
		logoutOnce: &sync.Once{},
	}
}

// SetOnForcedLogout registers the callback run after a forced logout
// (authentication failure or a failed standing check). The CLI uses it
// to drop back to the login prompt.
func (s *Store) SetOnForcedLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onForcedLogout = fn
}

// Load restores the persisted token and user into memory. A stale user
// without a token is ignored: no token means unauthenticated.
func (s *Store) Load(ctx context.Context) error {
	tok, err := s.states.Get(ctx, state.KeyToken)
	if err != nil {
		return err
	}
	raw, err := s.states.Get(ctx, state.KeyUser)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = string(tok)
	s.user = nil
	if s.token != "" && len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			s.log.Warn(ctx, "discarding unreadable persisted user", "err", err)
		} else {
			s.user = &u
		}
	}
	return nil
}

// Bootstrap completes session restore: when a token is present but no
// user is in memory, it issues exactly one getCurrentUser. A fetch
// failure is logged and left alone — a transient network failure must
// not log the user out. With no token it resolves immediately.
func (s *Store) Bootstrap(ctx context.Context, fetch userFetcher) {
	s.mu.RLock()
	token, user := s.token, s.user
	s.mu.RUnlock()

	if token == "" || user != nil {
		return
	}

	u, err := fetch.GetCurrentUser(ctx)
	if err != nil || u == nil {
		s.log.Warn(ctx, "could not fetch user, keeping local state", "err", err)
		return
	}
	if err := s.SetCurrentUser(ctx, u); err != nil {
		s.log.Warn(ctx, "could not persist bootstrapped user", "err", err)
	}
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the in-memory user, nil when unauthenticated.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil
	}
	return s.user
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken persists a fresh token and starts a new session generation,
// re-arming the forced-logout once.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.states.Set(ctx, state.KeyToken, []byte(token)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.logoutOnce = &sync.Once{}
	return nil
}

// SetCurrentUser persists and holds the given user. A nil user clears
// the persisted copy but leaves the token alone.
func (s *Store) SetCurrentUser(ctx context.Context, u *models.User) error {
	if u == nil {
		if err := s.states.Delete(ctx, state.KeyUser); err != nil {
			return err
		}
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.states.Set(ctx, state.KeyUser, raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// ClearUser destroys the session: both persisted keys and the in-memory
// copy. Used by explicit logout and by the forced-logout path.
func (s *Store) ClearUser(ctx context.Context) error {
	if err := s.states.Delete(ctx, state.KeyToken); err != nil {
		return err
	}
	if err := s.states.Delete(ctx, state.KeyUser); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.logoutOnce = &sync.Once{}
	s.mu.Unlock()
	return nil
}

// ForceLogout clears the session and fires the registered callback,
// once per session generation no matter how many in-flight requests
// fail simultaneously.
func (s *Store) ForceLogout(ctx context.Context) {
	s.mu.RLock()
	once := s.logoutOnce
	cb := s.onForcedLogout
	s.mu.RUnlock()

	once.Do(func() {
		if err := s.ClearUser(ctx); err != nil {
			s.log.Error(ctx, "failed to clear session on forced logout", "err", err)
		}
		s.log.Info(ctx, "session terminated, returning to login")
		if cb != nil {
			cb()
		}
	})
}

// TokenClaims returns the unverified claims of the bearer token. The
// signature can only be checked server-side; this is for display and
// diagnostics, never authorization.
func (s *Store) TokenClaims() (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token(), claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenExpiresAt reports when the bearer token lapses, when the claim
// is present and readable.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	claims, err := s.TokenClaims()
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
