package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/carlog/internal/apitest"
	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/config"
	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/tokens"
	"github.com/dmitrijs2005/carlog/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
}

type harness struct {
	api   *apitest.Server
	store *tokens.Store
	c     *client.HTTPClient
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	api := apitest.New(t)
	_, err := api.AddUser("ana@example.com", "secret", "Ana")
	require.NoError(t, err)

	store := tokens.NewStore(tokens.NewMemoryBackend())
	c, err := client.NewHTTPClient(api.BaseURL(), store)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return &harness{api: api, store: store, c: c}
}

// run feeds script to a fresh App over the harness and returns its output.
func (h *harness) run(t *testing.T, script ...string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	a := newApp(h.c, h.store, logging.Discard(), rdr(strings.Join(script, "\n")+"\n"), &out)
	a.now = fixedNow
	a.Run(context.Background())
	return a, out.String()
}

func TestApp_LoginAddCarAndFuel(t *testing.T) {
	h := newHarness(t)

	a, out := h.run(t,
		"login", "ana@example.com", "secret",
		"addcar", "Golf", "VW Golf 7", "2016", "B-101-ABC", "",
		"cars",
		"addfuel", "2026-03-01", "1000", "40", "300", "OMV", "",
		"addfuel", "2026-03-15", "1500", "35", "260", "", "motorina",
		"fuel",
		"stats",
		"exit",
	)

	assert.Contains(t, out, "Welcome, Ana!")
	assert.Contains(t, out, "Added Golf")
	assert.Contains(t, out, "B-101-ABC")
	assert.Contains(t, out, "Recorded 40.00 L for Golf")
	assert.Contains(t, out, "Average consumption: 7.0 L/100km")
	assert.Contains(t, out, "Total spent:")
	assert.Contains(t, out, "560.00 RON")
	assert.Contains(t, out, "Bye!")
	assert.True(t, a.isLoggedIn())
}

func TestApp_RepairsAndReminders(t *testing.T) {
	h := newHarness(t)

	_, out := h.run(t,
		"login", "ana@example.com", "secret",
		"addcar", "Logan", "Dacia Logan", "2019", "CJ-22-XYZ", "",
		"addrepair 1", "2026-03-02", "Schimb ulei si filtre", "350", "AutoFix",
		"repairs CJ-22-XYZ",
		"addreminder 1", "itp", "2026-03-25", "",
		"reminders",
		"exit",
	)

	assert.Contains(t, out, "Recorded repair for Logan")
	assert.Contains(t, out, "Oil change")
	assert.Contains(t, out, "ITP reminder set for 2026-03-25")
	assert.Contains(t, out, "urgent")
	assert.Contains(t, out, "365 d")
}

func TestApp_ValidationErrorsAreReported(t *testing.T) {
	h := newHarness(t)

	_, out := h.run(t,
		"login", "ana@example.com", "secret",
		"addcar", "Golf", "VW", "1800", "B-1", "",
		"fuel",
		"exit",
	)
	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "add a car first")
}

func TestApp_SessionLossReturnsToLogin(t *testing.T) {
	h := newHarness(t)

	a, out := h.run(t, "login", "ana@example.com", "secret", "exit")
	require.True(t, a.isLoggedIn(), out)

	h.api.RevokeAccessTokens()
	h.api.RevokeRefreshTokens()

	var buf bytes.Buffer
	a.reader = rdr("cars\ncars\nexit\n")
	a.out = &buf
	runREPL(context.Background(), a, a.getStatus, a.reader)

	out = buf.String()
	assert.Contains(t, out, "Your session has expired")
	assert.Contains(t, out, "Please log in first")
	assert.False(t, a.isLoggedIn())
	assert.False(t, h.store.HasValidTokens())
}

func TestApp_RestoresSession(t *testing.T) {
	h := newHarness(t)

	_, out := h.run(t, "login", "ana@example.com", "secret", "exit")
	require.Contains(t, out, "Welcome, Ana!")

	a, out := h.run(t, "me", "exit")
	assert.Contains(t, out, "Welcome back, Ana!")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, "Free")
	assert.True(t, a.isLoggedIn())
}

func TestApp_LogoutAndPlans(t *testing.T) {
	h := newHarness(t)

	a, out := h.run(t,
		"login", "ana@example.com", "secret",
		"plans",
		"upgrade", "fleet",
		"logout",
		"plans",
		"exit",
	)

	assert.Contains(t, out, "29 RON/month")
	assert.Contains(t, out, "(current)")
	assert.Contains(t, out, "https://checkout.example.test/session/fleet/")
	assert.Contains(t, out, "Logged out.")
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, 1, h.api.LogoutCalls())
}

func TestApp_Register(t *testing.T) {
	h := newHarness(t)

	_, out := h.run(t, "register", "ion@example.com", "Ion", "pw", "login", "ion@example.com", "pw", "exit")
	assert.Contains(t, out, "Account created for ion@example.com")
	assert.Contains(t, out, "Welcome, Ion!")
}

func TestApp_ServerUnavailable(t *testing.T) {
	h := newHarness(t)
	h.api.Close()

	_, out := h.run(t, "login", "ana@example.com", "secret", "exit")
	assert.Contains(t, out, "Server unavailable")
}

func TestMatchCar(t *testing.T) {
	cars := []models.Car{{ID: "a", NumberPlate: "B-1"}, {ID: "b", NumberPlate: "CJ-2"}}

	c, err := matchCar(cars, "2")
	require.NoError(t, err)
	assert.Equal(t, "b", c.ID)

	c, err = matchCar(cars, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "a", c.ID)

	_, err = matchCar(cars, "9")
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestNewApp_OpensLocalState(t *testing.T) {
	api := apitest.New(t)
	_, err := api.AddUser("ana@example.com", "secret", "Ana")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = api.BaseURL()
	cfg.DataDir = filepath.Join(t.TempDir(), "state")
	cfg.StoreKey = "passphrase"

	ctx := context.Background()
	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	_, err = a.authService.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	a.Close()

	// a second start sees the sealed session
	b, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()
	u, err := b.authService.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)

	assert.FileExists(t, filepath.Join(cfg.DataDir, "carlog.db"))
}
