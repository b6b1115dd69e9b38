package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/services"
)

func (a *App) commands() []command {
	return []command{
		{name: "register", help: "create an account", auth: -1, run: a.Register},
		{name: "login", help: "log in", auth: -1, run: a.Login},
		{name: "logout", help: "log out", auth: 1, run: a.Logout},
		{name: "me", help: "show your account", auth: 1, run: a.Me},

		{name: "cars", help: "list your cars", auth: 1, run: a.Cars},
		{name: "addcar", help: "add a car", auth: 1, run: a.AddCar},
		{name: "delcar", usage: "[car]", help: "delete a car and its logs", auth: 1, run: a.DelCar},

		{name: "fuel", usage: "[car]", help: "list fuel logs", auth: 1, run: a.Fuel},
		{name: "addfuel", usage: "[car]", help: "record a fill-up", auth: 1, run: a.AddFuel},
		{name: "delfuel", usage: "<id>", help: "delete a fuel log", auth: 1, run: a.DelFuel},

		{name: "repairs", usage: "[car]", help: "list repairs", auth: 1, run: a.Repairs},
		{name: "addrepair", usage: "[car]", help: "record a repair", auth: 1, run: a.AddRepair},
		{name: "delrepair", usage: "<id>", help: "delete a repair", auth: 1, run: a.DelRepair},

		{name: "reminders", usage: "[car]", help: "list reminders", auth: 1, run: a.Reminders},
		{name: "addreminder", usage: "[car]", help: "add a reminder", auth: 1, run: a.AddReminder},
		{name: "notified", usage: "<id>", help: "mark a reminder as notified", auth: 1, run: a.MarkNotified},
		{name: "delreminder", usage: "<id>", help: "delete a reminder", auth: 1, run: a.DelReminder},

		{name: "stats", help: "statistics across all cars", auth: 1, run: a.Stats},
		{name: "plans", help: "list subscription plans", run: a.Plans},
		{name: "upgrade", usage: "[plan]", help: "start a plan upgrade", auth: 1, run: a.Upgrade},
	}
}

func (a *App) output() io.Writer {
	return a.out
}

// handleError reports a failed command. A lost session sends the user back
// to the logged-out prompt.
func (a *App) handleError(ctx context.Context, err error) {

	a.log.Debug(ctx, "command failed", "error", err)

	switch {
	case errors.Is(err, client.ErrAuthFailure), errors.Is(err, services.ErrNotAuthenticated):
		a.user = nil
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later.")
	case errors.Is(err, models.ErrValidation), errors.Is(err, services.ErrMissingID):
		fmt.Fprintln(a.out, "Invalid input:", err)
	case errors.Is(err, context.Canceled):
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
