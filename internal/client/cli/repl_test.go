package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Products(_ context.Context, a []string) error {
	return f.record("products", a)
}
func (f *fakeExec) Category(_ context.Context, a []string) error {
	return f.record("category", a)
}
func (f *fakeExec) Featured(_ context.Context, a []string) error {
	return f.record("featured", a)
}
func (f *fakeExec) Categories(_ context.Context, a []string) error {
	return f.record("categories", a)
}
func (f *fakeExec) Show(_ context.Context, a []string) error { return f.record("show", a) }
func (f *fakeExec) Add(_ context.Context, a []string) error { return f.record("add", a) }
func (f *fakeExec) Cart(_ context.Context, a []string) error { return f.record("cart", a) }
func (f *fakeExec) Qty(_ context.Context, a []string) error { return f.record("qty", a) }
func (f *fakeExec) Remove(_ context.Context, a []string) error { return f.record("remove", a) }
func (f *fakeExec) Clear(_ context.Context, a []string) error { return f.record("clear", a) }
func (f *fakeExec) Checkout(_ context.Context, a []string) error {
	return f.record("checkout", a)
}
func (f *fakeExec) Contact(_ context.Context, a []string) error {
	return f.record("contact", a)
}
func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.record("login", a)
}
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.record("logout", a)
}
func (f *fakeExec) Whoami(_ context.Context, a []string) error { return f.record("whoami", a) }
func (f *fakeExec) Admin(_ context.Context, a []string) error { return f.record("admin", a) }

func run(exec execIface, input string) {
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	run(exec, strings.Join([]string{
		"products silk saree",
		"add p1 M 2",
		"qty p1 M 3",
		"rm p1 M",
		"cart",
		"checkout",
		"login",
		"admin orders",
		"logout",
		"exit",
		"cart",
	}, "\n"))

	assert.Equal(t, []string{"products", "add", "qty", "remove", "cart", "checkout", "login", "admin", "logout"}, exec.calls)
	assert.Equal(t, []string{"silk", "saree"}, exec.args[0])
	assert.Equal(t, []string{"p1", "M", "2"}, exec.args[1])
	assert.Equal(t, []string{"orders"}, exec.args[7])
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := silencePrintln(t)
	run(&fakeExec{}, "help\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "Available commands")
	assert.NotContains(t, strings.Join(*lines, "\n"), "Admin commands")

	lines = silencePrintln(t)
	run(&fakeExec{loggedIn: true}, "help\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "Admin commands")
}

func TestRunREPL_UnknownAndBlank(t *testing.T) {
	lines := silencePrintln(t)
	exec := &fakeExec{}

	run(exec, "\n   \nfoobar\nquit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silencePrintln(t)
	exec := &fakeExec{}

	run(exec, "cart\nfeatured")

	assert.Equal(t, []string{"cart", "featured"}, exec.calls)
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	lines := silencePrintln(t)
	exec := &fakeExec{err: services.ErrEmptyCart}

	run(exec, "checkout\n")

	assert.Contains(t, *lines, "Your cart is empty.")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&session.LoginRedirect{Reason: session.ReasonSessionExpired}, ""},
		{errUsage("show <id>"), "Usage: show <id>"},
		{&services.ValidationError{Fields: []services.FieldError{{Field: "phone", Rule: "number"}}}, "Please check: phone (number)"},
		{session.ErrAuthenticationFailed, "Invalid username or password."},
		{&api.HTTPError{StatusCode: 404}, "Not found."},
		{&api.HTTPError{StatusCode: 401}, "Not authorized."},
		{api.ErrUnavailable, "Server unavailable, try again later."},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, userMessage(tt.err))
	}
}
