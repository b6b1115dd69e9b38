package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrAuthFailure      = errors.New("authentication required")
	ErrNoRefreshToken   = errors.New("no refresh token available")
	ErrProtocolMismatch = errors.New("server returned non-JSON response, API endpoint may not be available")
)

// ServerError is a non-2xx response that was not recovered by a refresh.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// ServerError.
func StatusCode(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

const maxErrorBody = 1 << 20

// newServerError reads the message a server put into an error body, if the
// body is JSON with "message" or "error".
func newServerError(resp *http.Response) *ServerError {
	se := &ServerError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return se
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		se.Message = body.Message
		if se.Message == "" {
			se.Message = body.Error
		}
	}
	return se
}
