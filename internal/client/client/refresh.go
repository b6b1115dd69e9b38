package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/tokens"
	"github.com/golang-jwt/jwt/v5"
)

const RefreshPath = "/auth/refresh"

// Refresh exchanges the stored refresh token for new credentials and returns
// the new access token. It joins a refresh already in flight.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	return c.refreshAfter(ctx, "")
}

// refreshAfter returns an access token newer than stale, refreshing at most
// once across all concurrent callers. An empty stale forces a refresh.
func (c *HTTPClient) refreshAfter(ctx context.Context, stale string) (string, error) {

	token, err := c.joinRefresh(ctx, stale)
	if err != nil {
		return "", err
	}
	// The flight we joined may have been checking an older token than ours.
	if stale != "" && token == stale {
		return c.joinRefresh(ctx, stale)
	}
	return token, nil
}

func (c *HTTPClient) joinRefresh(ctx context.Context, stale string) (string, error) {

	ch := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		if stale != "" {
			if cur, ok := c.tokens.AccessToken(); ok && cur != stale {
				return cur, nil
			}
		}
		return c.refresh(context.WithoutCancel(ctx))
	})
	if c.joined != nil {
		c.joined()
	}

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *HTTPClient) refresh(ctx context.Context) (string, error) {

	refreshToken, ok := c.tokens.RefreshToken()
	if !ok {
		return "", c.failRefresh(ctx, ErrNoRefreshToken)
	}

	c.log.Info(ctx, "refreshing access token")

	body, err := json.Marshal(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", c.failRefresh(ctx, err)
	}

	resp, err := c.send(ctx, http.MethodPost, RefreshPath, body, "")
	if err != nil {
		return "", c.failRefresh(ctx, err)
	}
	defer drain(resp)

	var env models.Envelope[models.TokenPair]
	if err := decode(resp, &env); err != nil {
		return "", c.failRefresh(ctx, err)
	}

	if err := StoreTokenPair(ctx, c.tokens, env.Data); err != nil {
		return "", c.failRefresh(ctx, err)
	}

	c.log.Info(ctx, "access token refreshed")
	return env.Data.AccessToken, nil
}

func (c *HTTPClient) failRefresh(ctx context.Context, cause error) error {

	if err := c.tokens.ClearTokens(ctx); err != nil {
		c.log.Error(ctx, "clear tokens after failed refresh", "error", err)
	}
	c.log.Warn(ctx, "token refresh failed", "error", cause)

	return fmt.Errorf("%w: %w", ErrAuthFailure, cause)
}

// StoreTokenPair saves a login or refresh result. The lifetime comes from
// ExpiresIn, else the absolute ExpiresAt, else the access token's exp claim.
func StoreTokenPair(ctx context.Context, store TokenStore, pair models.TokenPair) error {

	switch {
	case pair.ExpiresIn > 0:
		return store.SetTokens(ctx, pair.AccessToken, pair.RefreshToken, pair.ExpiresIn)
	case pair.ExpiresAt > 0:
		return store.SetTokensUntil(ctx, pair.AccessToken, pair.RefreshToken, time.UnixMilli(pair.ExpiresAt))
	}

	exp, err := jwtExpiry(pair.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %w", tokens.ErrInvalidTokenData, err)
	}
	return store.SetTokensUntil(ctx, pair.AccessToken, pair.RefreshToken, exp)
}

func jwtExpiry(accessToken string) (time.Time, error) {

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, fmt.Errorf("read token expiry: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("read token expiry: no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
