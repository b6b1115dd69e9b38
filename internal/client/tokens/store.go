package tokens

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"
)

// ExpiryMargin is how long before the real expiry a token is already
// treated as expired.
const ExpiryMargin = 5 * time.Minute

// Store is the single source of truth for the current credentials. It caches
// the record in memory and writes through to its Backend. Safe for
// concurrent use.
type Store struct {
	backend Backend
	now     func() time.Time

	// writeMu serialises backend writes; mu guards rec.
	writeMu sync.Mutex
	mu      sync.RWMutex
	rec     *Record
}

type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store over backend. Call Init to pick up a
// previously persisted record.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init loads the persisted record. A partial or malformed record is removed
// from the backend and the store starts empty.
func (s *Store) Init(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	values, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}

	rec, ok := recordFromValues(values)
	if !ok {
		s.swap(nil)
		if len(values) > 0 {
			if err := s.backend.Clear(ctx); err != nil {
				return fmt.Errorf("drop partial tokens: %w", err)
			}
		}
		return nil
	}
	s.swap(&rec)
	return nil
}

// SetTokens stores a new record expiring expiresIn seconds from now. Empty
// tokens, a non-positive expiresIn, or one too large to represent as an
// instant yield ErrInvalidTokenData and leave the
// current record untouched.
func (s *Store) SetTokens(ctx context.Context, accessToken, refreshToken string, expiresIn int64) error {
	if accessToken == "" || refreshToken == "" || expiresIn <= 0 {
		return ErrInvalidTokenData
	}
	nowMs := s.now().UnixMilli()
	if expiresIn > (math.MaxInt64-nowMs)/1000 {
		return ErrInvalidTokenData
	}
	expiresAt := time.UnixMilli(nowMs + expiresIn*1000)
	return s.save(ctx, Record{AccessToken: accessToken, RefreshToken: refreshToken, ExpiresAt: expiresAt})
}

// SetTokensUntil stores a new record with an absolute expiry, for servers
// that report expiresAt instead of expiresIn. expiresAt must lie in the
// future.
func (s *Store) SetTokensUntil(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error {
	if accessToken == "" || refreshToken == "" || !expiresAt.After(s.now()) {
		return ErrInvalidTokenData
	}
	expiresAt = time.UnixMilli(expiresAt.UnixMilli())
	return s.save(ctx, Record{AccessToken: accessToken, RefreshToken: refreshToken, ExpiresAt: expiresAt})
}

func (s *Store) save(ctx context.Context, rec Record) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.backend.Save(ctx, rec.values()); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	s.swap(&rec)
	return nil
}

// ClearTokens removes the record. The in-memory copy is dropped even when
// the backend fails, so a cleared store never hands out a token.
func (s *Store) ClearTokens(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.swap(nil)
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (s *Store) swap(rec *Record) {
	s.mu.Lock()
	s.rec = rec
	s.mu.Unlock()
}

func (s *Store) current() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec
}

// Snapshot returns a copy of the current record.
func (s *Store) Snapshot() (Record, bool) {
	rec := s.current()
	if rec == nil {
		return Record{}, false
	}
	return *rec, true
}

func (s *Store) AccessToken() (string, bool) {
	rec := s.current()
	if rec == nil {
		return "", false
	}
	return rec.AccessToken, true
}

func (s *Store) RefreshToken() (string, bool) {
	rec := s.current()
	if rec == nil {
		return "", false
	}
	return rec.RefreshToken, true
}

func (s *Store) ExpiresAt() (time.Time, bool) {
	rec := s.current()
	if rec == nil {
		return time.Time{}, false
	}
	return rec.ExpiresAt, true
}

// IsExpired reports whether there is no record or the access token is within
// ExpiryMargin of its expiry.
func (s *Store) IsExpired() bool {
	rec := s.current()
	if rec == nil {
		return true
	}
	return s.now().After(rec.ExpiresAt.Add(-ExpiryMargin))
}

// HasValidTokens reports whether both tokens are present and not expired.
func (s *Store) HasValidTokens() bool {
	rec := s.current()
	return rec != nil && rec.AccessToken != "" && rec.RefreshToken != "" && !s.IsExpired()
}
