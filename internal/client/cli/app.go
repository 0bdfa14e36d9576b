package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	pinger pinger

	session  *session.Store
	cart     *cart.Store
	catalog  services.CatalogService
	checkout services.CheckoutService
	contact  services.ContactService
	admin    services.AdminService

	mu          sync.RWMutex
	mode        Mode
	pendingFrom string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local storage and builds the API clients, stores and services.
//
// Two API clients share the base URL: a plain one for the public catalog and
// the session's credential exchange, and one whose transport is the session
// middleware for admin calls.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	publicAPI, err := api.NewClient(c.APIBaseURL, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		pinger: publicAPI,
		mode:   ModeOnline,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.session = session.NewStore(ctx, db, publicAPI,
		session.WithLogger(log.With("component", "session")),
		session.WithForceLogoutHandler(a.onForceLogout),
	)

	adminAPI, err := api.NewClient(c.APIBaseURL,
		api.WithHTTPClient(&http.Client{
			Timeout:   c.RequestTimeout,
			Transport: a.session.Transport(http.DefaultTransport),
		}),
		api.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.cart = cart.NewStore(ctx, storage.NewSQLiteRepository(db), cart.WithLogger(log.With("component", "cart")))
	a.catalog = services.NewCatalogService(publicAPI)
	a.checkout = services.NewCheckoutService(publicAPI, a.cart, log)
	a.contact = services.NewContactService(publicAPI)
	a.admin = services.NewAdminService(adminAPI, a.session)

	return a, nil
}

// withStores attaches the cart and session stores to ctx.
func (a *App) withStores(ctx context.Context) context.Context {
	return cart.NewContext(session.NewContext(ctx, a.session), a.cart)
}

// Run starts the connectivity watcher and the REPL, and blocks until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(a.withStores(ctx))
	defer cancel()

	printlnFn("Welcome to the storefront CLI (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.IsAuthenticated()
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// onForceLogout tells the user why they were signed out and remembers where
// they were going, so login can take them back there.
func (a *App) onForceLogout(r *session.LoginRedirect) {
	a.mu.Lock()
	if r.From != "" {
		a.pendingFrom = r.From
	}
	a.mu.Unlock()

	printlnFn(r.Message, "Use 'login' to sign in.")
}

func (a *App) takePendingFrom() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	from := a.pendingFrom
	a.pendingFrom = ""
	return from
}

// StartOnlineStatusWatcher pings the backend every interval and updates the
// connectivity mode until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
