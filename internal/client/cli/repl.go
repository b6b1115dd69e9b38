package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// command is one REPL verb.
type command struct {
	name  string
	usage string
	help  string
	// auth: 1 requires a session, -1 requires no session, 0 either
	auth int
	run  func(ctx context.Context, args []string) error
}

// replTarget is the surface the REPL drives. App implements it; tests can
// provide a lightweight stub.
type replTarget interface {
	isLoggedIn() bool
	commands() []command
	handleError(ctx context.Context, err error)
	output() io.Writer
}

// runREPL reads commands line by line from r and dispatches them. Errors
// from commands go to handleError; the loop only ends on EOF or exit/quit.
//
// The prompt shows the current status from statusFn, e.g.
//
//	carlog (Ana)>
//
// Commands that need a session are refused while logged out, and login or
// register are refused while logged in.
func runREPL(ctx context.Context, a replTarget, statusFn func() string, r *bufio.Reader) {

	w := a.output()
	cmds := a.commands()

	for {
		if status := statusFn(); status != "" {
			fmt.Fprintf(w, "carlog %s> ", status)
		} else {
			fmt.Fprint(w, "carlog> ")
		}

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := strings.ToLower(parts[0]), parts[1:]

		switch name {
		case "help", "?":
			printHelp(w, cmds, a.isLoggedIn())
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		c, ok := findCommand(cmds, name)
		switch {
		case !ok:
			fmt.Fprintln(w, "Unknown command:", name)
		case c.auth > 0 && !a.isLoggedIn():
			fmt.Fprintln(w, "Please log in first (type 'login').")
		case c.auth < 0 && a.isLoggedIn():
			fmt.Fprintln(w, "Already logged in; type 'logout' first.")
		default:
			if err := c.run(ctx, args); err != nil {
				a.handleError(ctx, err)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func findCommand(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printHelp(w io.Writer, cmds []command, loggedIn bool) {
	fmt.Fprintln(w, "Available commands:")
	for _, c := range cmds {
		if (c.auth > 0 && !loggedIn) || (c.auth < 0 && loggedIn) {
			continue
		}
		fmt.Fprintf(w, "  %-28s %s\n", strings.TrimSpace(c.name+" "+c.usage), c.help)
	}
	fmt.Fprintf(w, "  %-28s %s\n", "help", "show this list")
	fmt.Fprintf(w, "  %-28s %s\n", "exit | quit", "leave carlog")
}
