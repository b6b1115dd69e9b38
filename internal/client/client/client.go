package client

import (
	"context"
	"time"
)

// Client is the transport contract the services depend on. Paths are
// relative to the API base URL and start with "/". in is encoded as the JSON
// request body when non-nil; the JSON response body is decoded into out when
// out is non-nil.
type Client interface {
	Do(ctx context.Context, method, path string, in, out any) error
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string, out any) error

	// Refresh obtains new credentials ahead of expiry. It shares the
	// in-flight refresh, if any.
	Refresh(ctx context.Context) (string, error)
	Close() error
}

// TokenStore is the part of tokens.Store the client needs.
type TokenStore interface {
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	SetTokens(ctx context.Context, accessToken, refreshToken string, expiresIn int64) error
	SetTokensUntil(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error
	ClearTokens(ctx context.Context) error
}
