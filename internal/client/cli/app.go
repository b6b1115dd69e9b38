package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/config"
	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/services"
	"github.com/dmitrijs2005/carlog/internal/client/storage"
	"github.com/dmitrijs2005/carlog/internal/client/tokens"
	"github.com/dmitrijs2005/carlog/internal/filex"
	"github.com/dmitrijs2005/carlog/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	authService         services.AuthService
	carService          services.CarService
	fuelService         services.FuelService
	repairService       services.RepairService
	reminderService     services.ReminderService
	subscriptionService services.SubscriptionService

	user   *models.User
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	closers []func() error
}

// NewApp opens the local database, loads the stored session, and builds the
// API client and services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	dbPath, err := filex.DataFile(c.DataDir, storage.DatabaseFile)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	store, err := openTokenStore(ctx, db, c.StoreKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug(ctx, "app initialised", "api", c.APIBaseURL, "db", dbPath)

	a := newApp(apiClient, store, logger, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.closers = []func() error{apiClient.Close, db.Close}
	return a, nil
}

func openTokenStore(ctx context.Context, db *sql.DB, key string) (*tokens.Store, error) {

	var backend tokens.Backend = tokens.NewSQLiteBackend(db)
	if key != "" {
		sealed, err := tokens.NewSealedSQLiteBackend(ctx, db, []byte(key))
		if err != nil {
			return nil, fmt.Errorf("open sealed token store: %w", err)
		}
		backend = sealed
	}

	store := tokens.NewStore(backend)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func newApp(c client.Client, store services.TokenStore, logger logging.Logger, r *bufio.Reader, w io.Writer) *App {
	return &App{
		log:                 logger,
		authService:         services.NewAuthService(c, store, logger),
		carService:          services.NewCarService(c),
		fuelService:         services.NewFuelService(c),
		repairService:       services.NewRepairService(c),
		reminderService:     services.NewReminderService(c),
		subscriptionService: services.NewSubscriptionService(c),
		reader:              r,
		out:                 w,
		now:                 time.Now,
	}
}

// Run restores the previous session, if any, and serves commands until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to carlog (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	if a.user.Name != "" {
		return fmt.Sprintf("(%s)", a.user.Name)
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}
