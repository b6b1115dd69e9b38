package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/carlog/internal/common"
	"github.com/dmitrijs2005/carlog/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger

	refreshGroup singleflight.Group

	// joined, when set, runs after a request has joined the shared refresh.
	// Tests use it to line up concurrent waiters; production leaves it nil.
	joined func()
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client. A cookie jar is added
// if the client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		cp := *hc
		if cp.Jar == nil {
			cp.Jar = c.http.Jar
		}
		c.http = &cp
	}
}

// WithTimeout bounds each HTTP round trip. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.http.Timeout = d
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

func NewHTTPClient(baseURL string, store TokenStore, opts ...Option) (*HTTPClient, error) {

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api url must be absolute http(s), got %q", baseURL)
	}
	if store == nil {
		return nil, errors.New("token store is required")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		tokens:  store,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPut, path, in, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends one API request. A 401 to a request that carried a token triggers
// the shared refresh and exactly one retry.
func (c *HTTPClient) Do(ctx context.Context, method, path string, in, out any) error {

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	token, _ := c.tokens.AccessToken()

	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		drain(resp)

		fresh, err := c.refreshAfter(ctx, token)
		if err != nil {
			return err
		}

		resp, err = c.send(ctx, method, path, body, fresh)
		if err != nil {
			return err
		}
	}
	defer drain(resp)

	return decode(resp, out)
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body []byte, token string) (*http.Response, error) {

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", common.JSONContentType)
	req.Header.Set("Accept", common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)
	return resp, nil
}

// decode maps a response to the error taxonomy and, on success, fills out.
func decode(resp *http.Response, out any) error {

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newServerError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, common.JSONContentType) {
		return ErrProtocolMismatch
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
