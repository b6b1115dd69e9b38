package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/logging"
)

var ErrNotAuthenticated = errors.New("not logged in")

// TokenStore is the part of tokens.Store the auth service needs.
type TokenStore interface {
	client.TokenStore
	IsExpired() bool
	HasValidTokens() bool
}

// AuthService defines the session operations for the CLI.
//
// Contract:
//   - Login: authenticate, persist the token pair, and load the user.
//   - Register: create an account; does not log in.
//   - CurrentUser: load the user for the stored session, refreshing first
//     when the access token is close to expiry.
//   - Logout: best-effort server logout; local tokens are always cleared.
//   - UpdateUser / DeleteUser: manage the logged-in account.
//   - IsAuthenticated: whether the store holds usable tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context) error
	IsAuthenticated() bool
}

type authService struct {
	client client.Client
	tokens TokenStore
	log    logging.Logger
}

func NewAuthService(c client.Client, store TokenStore, log logging.Logger) AuthService {
	return &authService{client: c, tokens: store, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {

	creds := models.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	pair, err := call[models.TokenPair](ctx, a.client, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := client.StoreTokenPair(ctx, a.tokens, pair); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return a.CurrentUser(ctx)
}

func (a *authService) Register(ctx context.Context, email, password, name string) (*models.User, error) {

	reg := models.Registration{Email: email, Password: password, Name: name}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	res, err := call[models.RegisterResult](ctx, a.client, http.MethodPost, "/auth/register", reg)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &res.User, nil
}

// CurrentUser returns ErrNotAuthenticated when there is no stored session.
// A rejected session is cleared; a transport failure leaves it in place.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {

	if _, ok := a.tokens.AccessToken(); !ok {
		return nil, ErrNotAuthenticated
	}

	if a.tokens.IsExpired() {
		a.log.Debug(ctx, "access token near expiry, refreshing")
		if _, err := a.client.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("current user: %w", err)
		}
	}

	u, err := call[models.User](ctx, a.client, http.MethodGet, "/auth/me", nil)
	if err != nil {
		if rejected(err) {
			a.clear(ctx)
		}
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &u, nil
}

// rejected reports whether the server refused the session itself.
func rejected(err error) bool {
	return errors.Is(err, client.ErrAuthFailure) || client.StatusCode(err) != 0
}

func (a *authService) Logout(ctx context.Context) error {

	if refresh, ok := a.tokens.RefreshToken(); ok {
		err := a.client.Post(ctx, "/auth/logout", models.RefreshRequest{RefreshToken: refresh}, nil)
		if err != nil {
			a.log.Warn(ctx, "server logout failed", "error", err)
		}
	}

	if err := a.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {

	u, err := call[models.User](ctx, a.client, http.MethodPut, "/auth/update", upd)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

func (a *authService) DeleteUser(ctx context.Context) error {

	if err := a.client.Delete(ctx, "/auth/delete", nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := a.tokens.ClearTokens(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated() bool {
	return a.tokens.HasValidTokens()
}

func (a *authService) clear(ctx context.Context) {
	if err := a.tokens.ClearTokens(ctx); err != nil {
		a.log.Error(ctx, "clear tokens", "error", err)
	}
}
