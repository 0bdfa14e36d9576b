package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

/*************
 * Fake AuthAPI
 *************/

type fakeAuth struct {
	mu sync.Mutex

	// captured
	lastUsername string
	lastPassword string
	lastLogout   *models.AuthTokens
	lastRefresh  string

	loginCalls   atomic.Int32
	logoutCalls  atomic.Int32
	refreshCalls atomic.Int32

	// preset
	loginResult *models.LoginResult
	loginErr    error
	logoutErr   error
	refreshFn   func(ctx context.Context, refresh string) (*models.AuthTokens, error)
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.LoginResult, error) {
	f.loginCalls.Add(1)
	f.mu.Lock()
	f.lastUsername, f.lastPassword = username, password
	res, err := f.loginResult, f.loginErr
	f.mu.Unlock()
	return res, err
}

func (f *fakeAuth) Logout(_ context.Context, tokens models.AuthTokens) error {
	f.logoutCalls.Add(1)
	f.mu.Lock()
	f.lastLogout = &tokens
	f.mu.Unlock()
	return f.logoutErr
}

func (f *fakeAuth) RefreshToken(ctx context.Context, refresh string) (*models.AuthTokens, error) {
	f.refreshCalls.Add(1)
	f.mu.Lock()
	f.lastRefresh = refresh
	fn := f.refreshFn
	f.mu.Unlock()
	if fn == nil {
		return nil, errNoRefresh
	}
	return fn(ctx, refresh)
}

var errNoRefresh = errors.New("refresh not configured")

/*************
 * Helpers
 *************/

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// mintToken returns an HS256 JWT whose exp claim is exp. The backend key is
// irrelevant because the client never verifies signatures.
func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp":     exp.Unix(),
		"user_id": 1,
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func loginResult(username, access, refresh string) *models.LoginResult {
	return &models.LoginResult{
		User:   models.AuthUser{Username: username},
		Tokens: models.AuthTokens{Access: access, Refresh: refresh},
	}
}

// signedIn returns a store already logged in as "admin" with the given tokens.
func signedIn(t *testing.T, db *sql.DB, auth *fakeAuth, access, refresh string, opts ...Option) *Store {
	t.Helper()
	auth.loginResult = loginResult("admin", access, refresh)
	s := NewStore(context.Background(), db, auth, opts...)
	require.NoError(t, s.Login(context.Background(), "admin", "pw"))
	return s
}

func storedKeys(t *testing.T, db *sql.DB) map[string][]byte {
	t.Helper()
	all, err := storage.NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	return all
}
