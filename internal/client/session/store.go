package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

const (
	userKey   = "session.user"
	tokensKey = "session.tokens"
)

// AuthAPI is the backend's credential exchange. Implementations must not
// route through Store.Transport.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Logout(ctx context.Context, tokens models.AuthTokens) error
	RefreshToken(ctx context.Context, refresh string) (*models.AuthTokens, error)
}

type credentials struct {
	Username string `validate:"required,max=150"`
	Password string `validate:"required"`
}

type Store struct {
	mu     sync.RWMutex
	user   *models.AuthUser
	tokens *models.AuthTokens
	// gen changes whenever the session is replaced, refreshed or cleared.
	gen uint64

	db       *sql.DB
	auth     AuthAPI
	log      logging.Logger
	now      func() time.Time
	validate *validator.Validate
	handlers []ForceLogoutHandler

	refreshGroup singleflight.Group
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithForceLogoutHandler registers h to be called after each forced logout.
func WithForceLogoutHandler(h ForceLogoutHandler) Option {
	return func(s *Store) { s.handlers = append(s.handlers, h) }
}

// NewStore restores the session saved in db. A partial or unreadable session
// is wiped and the store starts signed out.
func NewStore(ctx context.Context, db *sql.DB, auth AuthAPI, opts ...Option) *Store {
	s := &Store{
		db:       db,
		auth:     auth,
		log:      logging.Discard(),
		now:      time.Now,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

func (s *Store) load(ctx context.Context) {
	repo := s.repo()

	rawUser, errUser := repo.Get(ctx, userKey)
	rawTokens, errTokens := repo.Get(ctx, tokensKey)
	if err := errors.Join(errUser, errTokens); err != nil {
		s.log.Warn(ctx, "session storage unreadable, starting signed out", "error", err)
		return
	}
	if rawUser == nil && rawTokens == nil {
		return
	}

	var user models.AuthUser
	var tokens models.AuthTokens
	errUser = json.Unmarshal(rawUser, &user)
	errTokens = json.Unmarshal(rawTokens, &tokens)
	res := models.LoginResult{User: user, Tokens: tokens}

	if errUser != nil || errTokens != nil || !res.Complete() {
		s.log.Warn(ctx, "discarding incomplete session", "has_user", rawUser != nil, "has_tokens", rawTokens != nil)
		if err := s.wipe(ctx); err != nil {
			s.log.Warn(ctx, "failed to wipe incomplete session", "error", err)
		}
		return
	}

	s.user = &user
	s.tokens = &tokens
	s.log.Debug(ctx, "session restored", "username", user.Username)
}

// wipe removes both session keys in one transaction. Storage writes ignore
// cancellation of ctx so that memory and disk cannot diverge.
func (s *Store) wipe(ctx context.Context) error {
	return dbx.WithTx(context.WithoutCancel(ctx), s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, userKey); err != nil {
			return err
		}
		return repo.Delete(ctx, tokensKey)
	})
}

func (s *Store) save(ctx context.Context, user models.AuthUser, tokens models.AuthTokens) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	rawTokens, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}

	return dbx.WithTx(context.WithoutCancel(ctx), s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, userKey, rawUser); err != nil {
			return err
		}
		return repo.Set(ctx, tokensKey, rawTokens)
	})
}

// Login exchanges credentials with the backend and, on success, persists and
// installs the new session. On any failure the current session is untouched.
func (s *Store) Login(ctx context.Context, username, password string) error {
	if err := s.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			s.log.Info(ctx, "login rejected", "username", username, "status", httpErr.StatusCode)
			return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
		}
		return fmt.Errorf("login request: %w", err)
	}
	if res == nil || !res.Complete() {
		s.log.Warn(ctx, "login response missing user or tokens", "username", username)
		return fmt.Errorf("%w: incomplete login response", ErrAuthenticationFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, res.User, res.Tokens); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	user, tokens := res.User, res.Tokens
	s.user, s.tokens = &user, &tokens
	s.gen++

	s.log.Info(ctx, "logged in", "username", user.Username)
	return nil
}

// Logout tells the backend to revoke the refresh token, if one is held, and
// clears the session. A failed backend notice is logged and ignored; only a
// local storage failure is returned.
func (s *Store) Logout(ctx context.Context) error {
	if tokens := s.Tokens(); tokens != nil && tokens.Refresh != "" {
		if err := s.auth.Logout(ctx, *tokens); err != nil {
			s.log.Warn(ctx, "logout notice failed", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx)
}

// clearLocked drops the in-memory session even if storage cannot be wiped, so
// the user is never left half signed in. Callers hold s.mu.
func (s *Store) clearLocked(ctx context.Context) error {
	had := s.user != nil || s.tokens != nil
	s.user, s.tokens = nil, nil
	s.gen++

	if err := s.wipe(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if had {
		s.log.Info(ctx, "session cleared")
	}
	return nil
}

// ForceLogout ends the session without contacting the backend, notifies the
// registered handlers and returns the redirect to show the user.
func (s *Store) ForceLogout(ctx context.Context, reason Reason) *LoginRedirect {
	return s.forceLogout(ctx, reason, "")
}

func (s *Store) forceLogout(ctx context.Context, reason Reason, from string) *LoginRedirect {
	s.mu.Lock()
	if err := s.clearLocked(ctx); err != nil {
		s.log.Warn(ctx, "forced logout could not wipe storage", "error", err)
	}
	handlers := s.handlers
	s.mu.Unlock()

	s.log.Info(ctx, "forced logout", "reason", string(reason))

	r := &LoginRedirect{Reason: reason, Message: reason.Message(), From: from}
	for _, h := range handlers {
		h(r)
	}
	return r
}

// forceLogoutIfCurrent is ForceLogout limited to the session generation gen;
// it is a no-op when that session is already gone.
func (s *Store) forceLogoutIfCurrent(ctx context.Context, gen uint64, reason Reason) {
	s.mu.RLock()
	current := s.gen == gen
	s.mu.RUnlock()
	if current {
		s.forceLogout(ctx, reason, "")
	}
}

// IsTokenValid reports whether an access token is held and its exp claim is
// still in the future.
func (s *Store) IsTokenValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return false
	}
	return tokenValidAt(s.tokens.Access, s.now())
}

// Guard admits callers holding a valid session. Otherwise it forces a logout
// and returns the *LoginRedirect, with From set to the requested location.
func (s *Store) Guard(ctx context.Context, from string) error {
	s.mu.RLock()
	hasTokens := s.tokens != nil
	s.mu.RUnlock()

	if !hasTokens {
		return s.forceLogout(ctx, ReasonNotAuthenticated, from)
	}
	if !s.IsTokenValid() {
		return s.forceLogout(ctx, ReasonSessionExpired, from)
	}
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Tokens returns a copy of the token pair, or nil.
func (s *Store) Tokens() *models.AuthTokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tokens == nil {
		return nil
	}
	t := *s.tokens
	return &t
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.tokens != nil
}

type snapshot struct {
	tokens *models.AuthTokens
	gen    uint64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{gen: s.gen}
	if s.tokens != nil {
		t := *s.tokens
		snap.tokens = &t
	}
	return snap
}

// refresh returns a fresh access token for the session captured in snap.
// Concurrent callers holding the same refresh token share one backend call,
// and a caller whose session was already refreshed reuses the result.
func (s *Store) refresh(ctx context.Context, snap snapshot) (string, error) {
	v, err, _ := s.refreshGroup.Do(snap.tokens.Refresh, func() (any, error) {
		cur := s.snapshot()
		if cur.gen != snap.gen {
			if cur.tokens != nil && cur.tokens.Access != snap.tokens.Access {
				return cur.tokens.Access, nil
			}
			return nil, errSessionChanged
		}

		// shared by every waiter, so no single caller may cancel it
		shared := context.WithoutCancel(ctx)
		tok, err := s.auth.RefreshToken(shared, snap.tokens.Refresh)
		if err != nil {
			return nil, err
		}
		return s.applyRefresh(shared, snap.gen, tok)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Store) applyRefresh(ctx context.Context, gen uint64, tok *models.AuthTokens) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen || s.tokens == nil || s.user == nil {
		s.log.Debug(ctx, "dropping refresh result for replaced session")
		return "", errSessionChanged
	}

	next := models.AuthTokens{Access: tok.Access, Refresh: s.tokens.Refresh}
	if tok.Refresh != "" {
		next.Refresh = tok.Refresh
	}
	if err := s.save(ctx, *s.user, next); err != nil {
		return "", fmt.Errorf("save refreshed tokens: %w", err)
	}
	s.tokens = &next
	s.gen++

	s.log.Debug(ctx, "access token refreshed", "rotated", tok.Refresh != "")
	return next.Access, nil
}
