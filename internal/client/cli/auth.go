package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carlog/internal/client/services"
	"github.com/dmitrijs2005/carlog/internal/common"
)

// Register prompts for email, name, and password and creates the account.
// The user still has to log in afterwards.
func (a *App) Register(ctx context.Context, _ []string) error {

	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	name, err := a.ask("Enter name")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Register(ctx, email, string(password), name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", u.Email)
	return nil
}

// Login prompts for credentials; on success the prompt shows the user.
func (a *App) Login(ctx context.Context, _ []string) error {

	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.user = u
	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(u.Name, u.Email))
	return nil
}

// Logout always ends the local session, even if the server call fails.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.user = nil
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {

	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.user = u

	plan := "Free"
	if u.Plan != nil {
		plan = u.Plan.Name
	}
	tw := newTable(a.out)
	fmt.Fprintf(tw, "Name:\t%s\n", displayName(u.Name, "-"))
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Plan:\t%s\n", plan)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Member since:\t%s\n", u.CreatedAt.Format("2006-01-02"))
	}
	return tw.Flush()
}

// restoreSession picks up a session persisted by an earlier run.
func (a *App) restoreSession(ctx context.Context) {

	u, err := a.authService.CurrentUser(ctx)
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		return
	case err != nil:
		a.log.Info(ctx, "could not restore session", "error", err)
		a.handleError(ctx, err)
		return
	}

	a.user = u
	fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(u.Name, u.Email))
}

func displayName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
