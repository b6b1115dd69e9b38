package apitest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const userIDKey = "userID"

type accessClaims struct {
	Gen int64 `json:"gen"`
	jwt.RegisteredClaims
}

// issue creates a token pair for userID. Callers hold s.mu.
func (s *Server) issue(userID string) (models.TokenPair, error) {

	claims := accessClaims{
		Gen: s.gen,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return models.TokenPair{}, err
	}
	s.refresh[refresh] = userID

	return models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL / time.Second),
	}, nil
}

func (s *Server) parseAccess(raw string) (string, error) {

	var claims accessClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if claims.Gen != s.gen {
		return "", errors.New("token revoked")
	}
	if _, ok := s.accounts[claims.Subject]; !ok {
		return "", errors.New("unknown user")
	}
	return claims.Subject, nil
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader(common.AuthorizationHeaderName)
		if !strings.HasPrefix(h, common.BearerPrefix) {
			fail(c, http.StatusUnauthorized, "Access token required")
			return
		}
		userID, err := s.parseAccess(strings.TrimPrefix(h, common.BearerPrefix))
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// AddUser creates an account directly and returns its id.
func (s *Server) AddUser(email, password, name string) (string, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return "", errors.New("User already exists")
		}
	}
	now := time.Now().UTC()
	u := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		PlanID:    string(models.SubscriptionFree),
	}
	s.accounts[u.ID] = &account{user: u, passwordHash: hash}
	return u.ID, nil
}

func (s *Server) register(c *gin.Context) {

	var req models.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.AddUser(req.Email, req.Password, req.Name)
	if err != nil {
		fail(c, http.StatusConflict, err.Error())
		return
	}

	s.mu.Lock()
	u := s.accounts[id].user
	s.mu.Unlock()

	c.JSON(http.StatusCreated, models.Envelope[models.RegisterResult]{
		Data:    models.RegisterResult{User: u},
		Message: "User registered successfully",
	})
}

func (s *Server) login(c *gin.Context) {

	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if !strings.EqualFold(a.user.Email, req.Email) {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)) != nil {
			break
		}
		pair, err := s.issue(a.user.ID)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		ok(c, http.StatusOK, pair)
		return
	}
	fail(c, http.StatusUnauthorized, "Invalid credentials")
}

func (s *Server) refreshTokens(c *gin.Context) {

	s.refreshCalls.Add(1)

	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		fail(c, http.StatusBadRequest, "Refresh token required")
		return
	}
	if s.failRefresh.Load() {
		fail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, found := s.refresh[req.RefreshToken]
	if !found {
		fail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	delete(s.refresh, req.RefreshToken)

	pair, err := s.issue(userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, pair)
}

func (s *Server) logout(c *gin.Context) {

	s.logoutCalls.Add(1)

	var req models.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	s.mu.Lock()
	delete(s.refresh, req.RefreshToken)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (s *Server) me(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.accounts[c.GetString(userIDKey)]
	u := a.user
	if p, err := models.FindPlan(u.PlanID); err == nil {
		u.Plan = &p
	}
	ok(c, http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.accounts[c.GetString(userIDKey)]
	if req.Name != nil {
		a.user.Name = *req.Name
	}
	if req.Email != nil {
		a.user.Email = *req.Email
	}
	a.user.UpdatedAt = time.Now().UTC()
	ok(c, http.StatusOK, a.user)
}

func (s *Server) deleteUser(c *gin.Context) {

	userID := c.GetString(userIDKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, userID)
	for tok, id := range s.refresh {
		if id == userID {
			delete(s.refresh, tok)
		}
	}
	for id, car := range s.cars {
		if car.UserID == userID {
			s.dropCarLocked(id)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (s *Server) checkout(c *gin.Context) {

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	plan, err := models.FindPlan(req.PlanID)
	if err != nil || plan.Price == 0 {
		fail(c, http.StatusBadRequest, "Invalid plan")
		return
	}
	ok(c, http.StatusOK, models.CheckoutSession{
		URL: "https://checkout.example.test/session/" + strings.ToLower(plan.ID) + "/" + uuid.NewString(),
	})
}
