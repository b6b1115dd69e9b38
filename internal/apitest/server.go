package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/gin-gonic/gin"
)

const DefaultAccessTTL = time.Hour

type account struct {
	user         models.User
	passwordHash []byte
}

// Server is a fake carlog API. Its URL field (from httptest.Server) plus
// "/api" is the client's base URL.
type Server struct {
	*httptest.Server

	secret []byte

	mu        sync.Mutex
	accessTTL time.Duration
	gen       int64
	accounts  map[string]*account // by user id
	refresh   map[string]string   // refresh token -> user id
	cars      map[string]*models.Car
	fuel      map[string]*models.FuelLog
	repairs   map[string]*models.RepairLog
	reminders map[string]*models.Reminder

	failRefresh atomic.Bool
	serveHTML   atomic.Bool

	refreshCalls atomic.Int32
	logoutCalls  atomic.Int32
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:    []byte("apitest-secret"),
		accessTTL: DefaultAccessTTL,
		accounts:  map[string]*account{},
		refresh:   map[string]string{},
		cars:      map[string]*models.Car{},
		fuel:      map[string]*models.FuelLog{},
		repairs:   map[string]*models.RepairLog{},
		reminders: map[string]*models.Reminder{},
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root the client should be configured with.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

func (s *Server) routes() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.htmlMiddleware())

	api := r.Group("/api")

	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.POST("/auth/refresh", s.refreshTokens)
	api.POST("/auth/logout", s.logout)

	authed := api.Group("", s.authMiddleware())
	authed.GET("/auth/me", s.me)
	authed.PUT("/auth/update", s.updateUser)
	authed.DELETE("/auth/delete", s.deleteUser)

	authed.GET("/cars", s.listCars)
	authed.POST("/cars", s.createCar)
	authed.PUT("/cars/:id", s.updateCar)
	authed.DELETE("/cars/:id", s.deleteCar)

	authed.GET("/fuel/:carId", s.listFuel)
	authed.POST("/fuel/:carId", s.createFuel)
	authed.DELETE("/fuel/:id", s.deleteFuel)

	authed.GET("/repair/:carId", s.listRepairs)
	authed.POST("/repair/:carId", s.createRepair)
	authed.DELETE("/repair/:id", s.deleteRepair)

	authed.GET("/reminders/:carId", s.listReminders)
	authed.POST("/reminders/:carId", s.createReminder)
	authed.PUT("/reminders/:id", s.updateReminder)
	authed.DELETE("/reminders/:id", s.deleteReminder)

	authed.POST("/subscription/create-checkout-session", s.checkout)

	return r
}

// SetAccessTTL changes the lifetime of access tokens issued from now on.
func (s *Server) SetAccessTTL(d time.Duration) {
	s.mu.Lock()
	s.accessTTL = d
	s.mu.Unlock()
}

// RevokeAccessTokens makes every access token issued so far answer 401.
// Refresh tokens stay valid.
func (s *Server) RevokeAccessTokens() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// RevokeRefreshTokens invalidates every refresh token issued so far.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	s.refresh = map[string]string{}
	s.mu.Unlock()
}

// FailRefresh makes /auth/refresh answer 401 while on is true.
func (s *Server) FailRefresh(on bool) { s.failRefresh.Store(on) }

// ServeHTML makes every route answer 200 with an HTML page while on is true.
func (s *Server) ServeHTML(on bool) { s.serveHTML.Store(on) }

func (s *Server) RefreshCalls() int { return int(s.refreshCalls.Load()) }

func (s *Server) LogoutCalls() int { return int(s.logoutCalls.Load()) }

func (s *Server) htmlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.serveHTML.Load() {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<!doctype html><title>carlog</title>"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

func ok[T any](c *gin.Context, status int, data T) {
	c.JSON(status, models.Envelope[T]{Data: data})
}
