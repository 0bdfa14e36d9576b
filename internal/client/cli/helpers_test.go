package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

/*************
 * Fakes
 *************/

type fakeCatalog struct {
	products   []models.Product
	lastFilter services.Filter
	err        error
}

func (f *fakeCatalog) Search(_ context.Context, flt services.Filter) ([]models.Product, error) {
	f.lastFilter = flt
	return f.products, f.err
}
func (f *fakeCatalog) Product(_ context.Context, id string) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, api.ErrNotFound
}
func (f *fakeCatalog) Featured(context.Context) ([]models.Product, error) { return f.products, f.err }
func (f *fakeCatalog) Categories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "c1", Name: "Men"}}, nil
}
func (f *fakeCatalog) Sizes(context.Context) ([]models.Size, error) { return nil, nil }
func (f *fakeCatalog) Team(context.Context) ([]models.StaffMember, error) { return nil, nil }

type fakeCheckout struct {
	lastForm *services.CheckoutForm
	order    *models.Order
	err      error
}

func (f *fakeCheckout) Checkout(_ context.Context, form services.CheckoutForm) (*models.Order, error) {
	f.lastForm = &form
	return f.order, f.err
}

type fakeContact struct {
	lastForm *services.ContactForm
	err      error
}

func (f *fakeContact) Send(_ context.Context, form services.ContactForm) error {
	f.lastForm = &form
	return f.err
}

// fakeAuthAPI backs a real session.Store.
type fakeAuthAPI struct {
	loginResult *models.LoginResult
	loginErr    error
	logoutCalls int
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (*models.LoginResult, error) {
	return f.loginResult, f.loginErr
}
func (f *fakeAuthAPI) Logout(context.Context, models.AuthTokens) error {
	f.logoutCalls++
	return nil
}
func (f *fakeAuthAPI) RefreshToken(context.Context, string) (*models.AuthTokens, error) {
	return nil, io.ErrUnexpectedEOF
}

/*************
 * Helpers
 *************/

type testApp struct {
	*App
	out  *bytes.Buffer
	ctx  context.Context
	auth *fakeAuthAPI
}

func newTestApp(t *testing.T, catalog services.CatalogService) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	out := &bytes.Buffer{}
	auth := &fakeAuthAPI{}
	a := &App{
		log:     logging.Discard(),
		catalog: catalog,
		mode:    ModeOnline,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}
	a.session = session.NewStore(ctx, db, auth, session.WithForceLogoutHandler(a.onForceLogout))
	a.cart = cart.NewStore(ctx, storage.NewSQLiteRepository(db))

	return &testApp{App: a, out: out, ctx: a.withStores(ctx), auth: auth}
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, strings.TrimSpace(strings.TrimSuffix(toString(a), "\n")))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if e, ok := v.(error); ok {
		return e.Error()
	}
	return ""
}

// stubAnswers makes getSimpleText and getMultiline return answers in order.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	origST, origML := getSimpleText, getMultiline
	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next() }
	t.Cleanup(func() { getSimpleText, getMultiline = origST, origML })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: "p1", Title: "Cotton Panjabi", Price: 1500,
			Category: &models.Category{ID: "c1", Name: "Men"},
			Sizes:    []models.Size{{ID: "s-m", Size: "M"}, {ID: "s-l", Size: "L"}},
			Images:   []models.ProductImage{{ID: "i1", ImageURL: "https://cdn/p1.jpg"}},
		},
		{ID: "p2", Title: "Silk Scarf", Price: 600},
	}
}

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func loginResult(t *testing.T, username string) *models.LoginResult {
	t.Helper()
	return &models.LoginResult{
		User:   models.AuthUser{Username: username},
		Tokens: models.AuthTokens{Access: mintToken(t, time.Now().Add(time.Hour)), Refresh: "refresh-1"},
	}
}
