// Package common contains constants and small helpers shared by the carlog
// client packages.
package common

// Outbound HTTP header names used by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// JSONContentType is sent on every request and expected on every response body.
const JSONContentType = "application/json"
