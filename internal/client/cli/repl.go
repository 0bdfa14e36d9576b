package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Products(ctx context.Context, args []string) error
	Category(ctx context.Context, args []string) error
	Featured(ctx context.Context, args []string) error
	Categories(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error

	Add(ctx context.Context, args []string) error
	Cart(ctx context.Context, args []string) error
	Qty(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
	Checkout(ctx context.Context, args []string) error
	Contact(ctx context.Context, args []string) error

	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
}

const (
	shopHelp  = "Available commands: products [query], category <id>, featured, categories, show <id>, add <id> <size> [qty], cart, qty <id> <size> <n>, remove <id> <size>, clear, checkout, contact, login, exit"
	adminHelp = "Admin commands: whoami, logout, admin <orders|order|delorder|messages|delmessage|categories|addcategory|rencategory|delcategory|sizes|addsize|rensize|delsize|addproduct|editproduct|delproduct> [args]"
)

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the remaining tokens to the matching handler. The loop exits on EOF
// or when the user types "exit" or "quit". Handler errors are reported to the
// user and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))

		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(shopHelp)
			if a.isLoggedIn() {
				printlnFn(adminHelp)
			}

		case "products", "p":
			err = a.Products(ctx, args)
		case "category":
			err = a.Category(ctx, args)
		case "featured":
			err = a.Featured(ctx, args)
		case "categories":
			err = a.Categories(ctx, args)
		case "show":
			err = a.Show(ctx, args)

		case "add":
			err = a.Add(ctx, args)
		case "cart":
			err = a.Cart(ctx, args)
		case "qty":
			err = a.Qty(ctx, args)
		case "remove", "rm":
			err = a.Remove(ctx, args)
		case "clear":
			err = a.Clear(ctx, args)
		case "checkout":
			err = a.Checkout(ctx, args)
		case "contact":
			err = a.Contact(ctx, args)

		case "login":
			err = a.Login(ctx, args)
		case "logout":
			err = a.Logout(ctx, args)
		case "whoami":
			err = a.Whoami(ctx, args)
		case "admin":
			err = a.Admin(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if msg := userMessage(err); msg != "" {
			printlnFn(msg)
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				printlnFn("Error:", readErr)
			}
			return
		}
	}
}

// errUsage carries a usage line back to the REPL.
type errUsage string

func (e errUsage) Error() string { return "Usage: " + string(e) }

// userMessage turns a handler error into the line shown to the user.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var redirect *session.LoginRedirect
	var verr *services.ValidationError
	var usage errUsage

	switch {
	case errors.As(err, &redirect):
		// already announced by the force-logout handler
		return ""
	case errors.As(err, &usage):
		return usage.Error()
	case errors.As(err, &verr):
		return "Please check: " + strings.TrimPrefix(verr.Error(), "invalid input: ")
	case errors.Is(err, session.ErrAuthenticationFailed):
		return "Invalid username or password."
	case errors.Is(err, services.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, cart.ErrInvalidQuantity):
		return "Quantity must be at least 1."
	case errors.Is(err, api.ErrNotFound):
		return "Not found."
	case errors.Is(err, api.ErrUnauthorized):
		return "Not authorized."
	case errors.Is(err, api.ErrUnavailable):
		return "Server unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}
