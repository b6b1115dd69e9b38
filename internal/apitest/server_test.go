package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func login(t *testing.T, s *Server, email, password string) models.TokenPair {
	t.Helper()
	resp := postJSON(t, s.BaseURL()+"/auth/login", "", models.Credentials{Email: email, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env models.Envelope[models.TokenPair]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Data
}

func TestLoginAndRefreshRotation(t *testing.T) {
	s := New(t)
	_, err := s.AddUser("ana@example.com", "secret", "Ana")
	require.NoError(t, err)

	pair := login(t, s, "ana@example.com", "secret")
	assert.NotEmpty(t, pair.AccessToken)
	assert.Len(t, pair.RefreshToken, 64)
	assert.EqualValues(t, 3600, pair.ExpiresIn)

	resp := postJSON(t, s.BaseURL()+"/auth/refresh", "", models.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// rotated tokens cannot be reused
	resp = postJSON(t, s.BaseURL()+"/auth/refresh", "", models.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 2, s.RefreshCalls())
}

func TestLogin_WrongPassword(t *testing.T) {
	s := New(t)
	_, err := s.AddUser("ana@example.com", "secret", "Ana")
	require.NoError(t, err)

	resp := postJSON(t, s.BaseURL()+"/auth/login", "", models.Credentials{Email: "ana@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRevokeAccessTokens(t *testing.T) {
	s := New(t)
	_, err := s.AddUser("ana@example.com", "secret", "Ana")
	require.NoError(t, err)
	pair := login(t, s, "ana@example.com", "secret")

	car := models.CarInput{Name: "Golf", Model: "VW", Year: 2015, NumberPlate: "B-01-ABC"}
	resp := postJSON(t, s.BaseURL()+"/cars", pair.AccessToken, car)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	s.RevokeAccessTokens()
	resp = postJSON(t, s.BaseURL()+"/cars", pair.AccessToken, car)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServeHTML(t *testing.T) {
	s := New(t)
	s.ServeHTML(true)

	resp := postJSON(t, s.BaseURL()+"/auth/login", "", models.Credentials{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
