package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhi1117/Flight-Search-Engine/internal/view"
)

var ErrNotFound = errors.New("search session not found")

type Config struct {
	TTL        time.Duration
	MaxEntries int
}

func DefaultConfig() Config {
	return Config{
		TTL:        30 * time.Minute,
		MaxEntries: 1000,
	}
}

type entry struct {
	engine     *view.Engine
	lastAccess time.Time
}

// Store keeps one view engine per search. Entries idle for longer than
// the TTL are dropped, and the oldest entry is evicted once MaxEntries is
// reached.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  Config
	now     func() time.Time
}

func NewStore(config Config) *Store {
	defaults := DefaultConfig()
	if config.TTL <= 0 {
		config.TTL = defaults.TTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = defaults.MaxEntries
	}
	return &Store{
		entries: make(map[string]*entry),
		config:  config,
		now:     time.Now,
	}
}

// Create registers engine under a fresh search id.
func (s *Store) Create(engine *view.Engine) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	for len(s.entries) >= s.config.MaxEntries {
		s.evictOldest()
	}

	id := uuid.NewString()
	s.entries[id] = &entry{engine: engine, lastAccess: now}
	return id
}

func (s *Store) Get(id string) (*view.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if now.Sub(e.lastAccess) > s.config.TTL {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	e.lastAccess = now
	return e.engine, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweep(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastAccess) > s.config.TTL {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.lastAccess.Before(oldest) {
			oldestID, oldest = id, e.lastAccess
		}
	}
	delete(s.entries, oldestID)
}
