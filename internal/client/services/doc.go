// Package services exposes the carlog API as typed operations for the CLI.
// Each service wraps a client.Client, unwraps the response envelope, and
// prefixes errors with the operation that failed.
package services
