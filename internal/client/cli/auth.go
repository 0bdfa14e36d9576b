package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// Login prompts for admin credentials and signs in. If a forced logout
// interrupted an admin page, that page is shown again.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s := session.MustFromContext(ctx)
	if err := s.Login(ctx, userName, string(password)); err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", userName, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", userName)

	if from := a.takePendingFrom(); from != "" {
		return a.resume(ctx, from)
	}
	return nil
}

// Logout signs out locally; the backend is told on a best-effort basis.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := session.MustFromContext(ctx).Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context, _ []string) error {
	s := session.MustFromContext(ctx)
	u := s.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	state := "valid"
	if !s.IsTokenValid() {
		state = "expired"
	}
	fmt.Fprintf(a.out, "%s (access token %s)\n", u.Username, state)
	return nil
}
