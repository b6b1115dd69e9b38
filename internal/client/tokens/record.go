package tokens

import (
	"errors"
	"strconv"
	"time"
)

const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	ExpiresAtKey    = "expires_at"
)

// Keys lists the persisted keys of a record.
var Keys = []string{AccessTokenKey, RefreshTokenKey, ExpiresAtKey}

// ErrInvalidTokenData is returned when a record would be incomplete or
// already expired at the moment it is stored.
var ErrInvalidTokenData = errors.New("invalid token data")

// Record is a complete credential set.
type Record struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func (r Record) values() map[string]string {
	return map[string]string{
		AccessTokenKey:  r.AccessToken,
		RefreshTokenKey: r.RefreshToken,
		ExpiresAtKey:    strconv.FormatInt(r.ExpiresAt.UnixMilli(), 10),
	}
}

// recordFromValues rebuilds a record; ok is false unless all three values
// are present and well formed.
func recordFromValues(m map[string]string) (Record, bool) {
	access, refresh, exp := m[AccessTokenKey], m[RefreshTokenKey], m[ExpiresAtKey]
	if access == "" || refresh == "" || exp == "" {
		return Record{}, false
	}
	ms, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return Record{}, false
	}
	return Record{AccessToken: access, RefreshToken: refresh, ExpiresAt: time.UnixMilli(ms)}, true
}
