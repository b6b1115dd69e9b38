package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/carlog/internal/apitest"
	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/tokens"
	"github.com/dmitrijs2005/carlog/internal/logging"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "secret123"
)

type env struct {
	api    *apitest.Server
	store  *tokens.Store
	client *client.HTTPClient
	auth   AuthService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	api := apitest.New(t)
	_, err := api.AddUser(testEmail, testPassword, "Ana")
	require.NoError(t, err)

	store := tokens.NewStore(tokens.NewMemoryBackend())
	c, err := client.NewHTTPClient(api.BaseURL(), store, client.WithTimeout(5*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return &env{
		api:    api,
		store:  store,
		client: c,
		auth:   NewAuthService(c, store, logging.Discard()),
	}
}

// loggedIn returns an env with an active session.
func loggedIn(t *testing.T) *env {
	t.Helper()
	e := newEnv(t)
	_, err := e.auth.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	return e
}

func (e *env) addCar(t *testing.T) *models.Car {
	t.Helper()
	car, err := NewCarService(e.client).Create(context.Background(), models.CarInput{
		Name: "Golf", Model: "VW Golf 7", Year: 2016, NumberPlate: "B-101-CAR",
	})
	require.NoError(t, err)
	return car
}

func day(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
