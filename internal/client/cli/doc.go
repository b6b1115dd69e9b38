// Package cli provides the interactive carlog command-line client.
//
// It wires configuration, the local token database, the API client, and the
// services into an App, then runs a read-eval-print loop. On start the App
// tries to restore the previous session from the stored tokens.
//
// Key features:
//   - Register / Login / Logout / Me
//   - Cars, fuel logs, repairs, and reminders: list, add, delete
//   - Statistics across all cars
//   - Subscription plans and upgrade checkout
//
// Whenever a command fails because the session could not be refreshed, the
// App forgets the user and returns to the logged-out prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
