// Package session keeps the server-side record behind each visitor's cookie
// token: the signed-in user id, an idle-timeout deadline, and one-shot flash
// messages for the next rendered page.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 60 * time.Second

type record struct {
	userID   string
	deadline time.Time
	flash    map[string][]string
}

type Store struct {
	mu      sync.Mutex
	records map[string]*record
	ttl     time.Duration
	now     func() time.Time
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source, for deterministic expiry in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		records: make(map[string]*record),
		ttl:     DefaultTTL,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// get returns the live record for a token, lazily dropping it once the idle
// deadline has passed. Callers must hold s.mu.
func (s *Store) get(token string) *record {
	rec, ok := s.records[token]

	if !ok {
		return nil
	}

	if s.now().After(rec.deadline) {
		delete(s.records, token)
		return nil
	}

	return rec
}

// Create registers a fresh anonymous session and returns its opaque token.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.records[token] = &record{
		deadline: s.now().Add(s.ttl),
		flash:    make(map[string][]string),
	}

	return token
}

// Valid reports whether the token still maps to a live record.
func (s *Store) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(token) != nil
}

// Login binds a user id to the session and resets its idle deadline.
func (s *Store) Login(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.get(token)

	if rec == nil {
		return
	}

	rec.userID = userID
	rec.deadline = s.now().Add(s.ttl)
}

// Logout destroys the record immediately; the token is dead server-side even
// if the client keeps its cookie.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, token)
}

func (s *Store) IsAuthenticated(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.get(token)

	return rec != nil && rec.userID != ""
}

// CurrentUserID returns the bound user id, or false for anonymous, expired,
// or unknown sessions.
func (s *Store) CurrentUserID(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.get(token)

	if rec == nil || rec.userID == "" {
		return "", false
	}

	return rec.userID, true
}

// AddFlash queues messages under a category for the next rendered page and
// resets the idle deadline, counting as a session write.
func (s *Store) AddFlash(token, category string, messages ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.get(token)

	if rec == nil || len(messages) == 0 {
		return
	}

	rec.flash[category] = append(rec.flash[category], messages...)
	rec.deadline = s.now().Add(s.ttl)
}

// ConsumeFlash returns all queued messages and clears them; each flash is
// seen exactly once.
func (s *Store) ConsumeFlash(token string) map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.get(token)

	if rec == nil || len(rec.flash) == 0 {
		return nil
	}

	flash := rec.flash
	rec.flash = make(map[string][]string)

	return flash
}
