package session

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"krishimitra/internal/logging"
	"krishimitra/internal/types"
)

// DefaultMaxSessions bounds how many live sessions a Manager keeps.
const DefaultMaxSessions = 1024

// Manager hands out sessions by id for the HTTP host. History lives in the
// store, so an evicted session is rebuilt transparently on its next turn.
// A session with a turn in flight stays reachable after eviction, so one id
// never maps to two sessions at once.
type Manager struct {
	mu           sync.Mutex
	sessions     *lru.Cache[string, *Session]
	inFlight     map[string]*pinned
	resolver     Resolver
	store        Store
	historyLimit int
	observer     TurnObserver
}

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	MaxSessions  int
	HistoryLimit int
	Observer     TurnObserver
}

// NewManager creates a session manager.
func NewManager(resolver Resolver, st Store, cfg ManagerConfig) (*Manager, error) {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, *Session](cfg.MaxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Manager{
		sessions:     cache,
		inFlight:     make(map[string]*pinned),
		resolver:     resolver,
		store:        st,
		historyLimit: cfg.HistoryLimit,
		observer:     cfg.Observer,
	}, nil
}

type pinned struct {
	s     *Session
	turns int
}

// Get returns the session for id, creating it when unknown. An empty id
// starts a new session. A known language switches the session to it.
func (m *Manager) Get(id string, lang types.Language) *Session {
	m.mu.Lock()
	s, ok := m.lookupLocked(id, lang)
	m.mu.Unlock()

	// Outside m.mu: SetLanguage waits for any turn in flight.
	if ok && lang.Known() {
		s.SetLanguage(lang)
	}
	return s
}

// Handle runs one turn on the session for id. The session is pinned for the
// duration of the turn.
func (m *Manager) Handle(ctx context.Context, id string, lang types.Language, utterance string) (*Turn, error) {
	m.mu.Lock()
	s, ok := m.lookupLocked(id, lang)
	p := m.inFlight[s.ID()]
	if p == nil {
		p = &pinned{s: s}
		m.inFlight[s.ID()] = p
	}
	p.turns++
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		if p.turns--; p.turns == 0 {
			delete(m.inFlight, s.ID())
		}
		m.mu.Unlock()
	}()

	if ok && lang.Known() {
		s.SetLanguage(lang)
	}
	return s.Handle(ctx, utterance)
}

// lookupLocked finds or creates the session for id. ok is false when the
// session was just created. m.mu must be held.
func (m *Manager) lookupLocked(id string, lang types.Language) (*Session, bool) {
	if id != "" {
		if s, ok := m.sessions.Get(id); ok {
			return s, true
		}
		if p, ok := m.inFlight[id]; ok {
			m.sessions.Add(id, p.s)
			logging.SessionDebug("Session restored from in-flight turn: %s", id)
			return p.s, true
		}
	}
	s := New(m.resolver, m.store, Config{ID: id, Language: lang, HistoryLimit: m.historyLimit, Observer: m.observer})
	m.sessions.Add(s.ID(), s)
	logging.SessionDebug("Session created: %s (live=%d)", s.ID(), m.sessions.Len())
	return s, false
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
