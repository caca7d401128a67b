package session

import (
	"sync"
	"time"

	"github.com/Sonkaryasshu/stealth-e-com/internal/ui"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Backend is what each browser session talks to: the catalog client exposed
// through the two slices the view-models need.
type Backend interface {
	ui.Lister
	ui.Searcher
}

// Session is everything one browser owns: its page state, chat panel, and the
// card registry that keeps per-card flags stable across re-renders. Handlers
// must hold the session lock while touching any of it.
type Session struct {
	ID    string
	Page  *ui.Page
	Cards *ui.CardSet

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serializes all mutation within one session, which is what keeps the
// panel's submit ordering guarantee without any cross-session locking.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store holds the in-memory browser sessions, keyed by cookie id. Nothing is
// persisted: a session disappears on TTL expiry or server restart.
type Store struct {
	backend Backend
	logger  *logrus.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(backend Backend, ttl time.Duration, logger *logrus.Logger) *Store {
	store := &Store{
		backend:  backend,
		logger:   logger,
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}

	go store.sweep()

	return store
}

// Get returns the session for the given cookie id, or nil when it is unknown
// or expired.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.lastSeen = time.Now()
	return sess
}

// Create builds a fresh session with its own page, panel and card registry.
func (s *Store) Create() *Session {
	panel := ui.NewPanel(s.backend, s.logger)
	sess := &Session{
		ID:       uuid.NewString(),
		Page:     ui.NewPage(s.backend, panel, s.logger),
		Cards:    ui.NewCardSet(),
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.WithField("session", sess.ID).Debug("Browser session created")
	return sess
}

// GetOrCreate resolves the cookie id to a live session, replacing unknown or
// expired ids with a new session.
func (s *Store) GetOrCreate(id string) *Session {
	if id != "" {
		if sess := s.Get(id); sess != nil {
			return sess
		}
	}
	return s.Create()
}

// Count is used by the health endpoint.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sweep drops sessions that have been idle past the TTL.
func (s *Store) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for id, sess := range s.sessions {
			if time.Since(sess.lastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
