package models

// Envelope is the body of every API response: the payload under "data",
// with optional human-readable "message" or "error".
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
