// Package session runs one chat turn end to end for the krishi host.
//
//	utterance -> load tasks + history -> Resolver -> apply decisions -> reply
//
// The resolver only proposes decisions; this package is where they are
// written to the store. Each decision is applied on its own, so one failed
// completion does not undo a task created in the same turn.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"krishimitra/internal/articulation"
	"krishimitra/internal/gateway"
	"krishimitra/internal/logging"
	"krishimitra/internal/perception"
	"krishimitra/internal/store"
	"krishimitra/internal/types"
)

// ErrEmptyUtterance is returned for blank input.
var ErrEmptyUtterance = errors.New("empty utterance")

// DefaultHistoryLimit is how many stored exchanges are loaded per turn.
const DefaultHistoryLimit = 16

// Store is the persistence a session needs. store.LocalStore implements it.
type Store interface {
	ListTasks(ctx context.Context, opts store.ListOptions) ([]types.Task, error)
	AddTask(ctx context.Context, t types.Task, source string) (types.Task, error)
	CompleteTask(ctx context.Context, id string) error
	AppendExchanges(ctx context.Context, sessionID string, exchanges ...types.Exchange) error
	RecentExchanges(ctx context.Context, sessionID string, limit int) ([]types.Exchange, error)
}

// Resolver is the engine entry point. *perception.Resolver implements it.
type Resolver interface {
	Resolve(ctx context.Context, req perception.Request) []types.Decision
}

// TurnObserver is notified after every handled turn. metrics.Metrics
// implements it.
type TurnObserver interface {
	ObserveTurn(elapsed time.Duration, failures int)
}

// Config configures a Session.
type Config struct {
	ID           string // empty generates a new id
	Language     types.Language
	HistoryLimit int
	Observer     TurnObserver
}

// Turn is the outcome of one utterance.
type Turn struct {
	SessionID string
	Language  types.Language
	Decisions []types.Decision
	Reply     string
	Redirect  string
	// Errors holds per-decision failures; the other decisions still applied.
	Errors   []error
	Duration time.Duration
}

// Failed reports whether any decision could not be applied.
func (t *Turn) Failed() bool {
	return len(t.Errors) > 0
}

// Session is one farmer's conversation. Turns are serialised.
type Session struct {
	mu           sync.Mutex
	id           string
	lang         types.Language
	historyLimit int
	resolver     Resolver
	store        Store
	observer     TurnObserver
}

// New creates a session.
func New(resolver Resolver, st Store, cfg Config) *Session {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &Session{
		id:           cfg.ID,
		lang:         cfg.Language.OrDefault(),
		historyLimit: cfg.HistoryLimit,
		resolver:     resolver,
		store:        st,
		observer:     cfg.Observer,
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Language returns the session's current language.
func (s *Session) Language() types.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the language used for later turns.
func (s *Session) SetLanguage(lang types.Language) {
	s.mu.Lock()
	s.lang = lang.OrDefault()
	s.mu.Unlock()
}

// Handle resolves one utterance, applies the resulting decisions and
// records the exchange. It fails only when the turn could not be resolved
// at all; per-decision failures are reported in Turn.Errors.
func (s *Session) Handle(ctx context.Context, utterance string) (*Turn, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, ErrEmptyUtterance
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	audit := logging.AuditWithSession(s.id)
	audit.TurnStart(string(s.lang), len(utterance))
	logging.Session("Handling turn: session=%s lang=%s %d chars", s.id, s.lang, len(utterance))

	tasks, err := s.store.ListTasks(ctx, store.ListOptions{IncludeCompleted: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	history, err := s.store.RecentExchanges(ctx, s.id, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	decisions := s.resolver.Resolve(gateway.WithSession(ctx, s.id), perception.Request{
		Utterance: utterance,
		Language:  s.lang,
		Tasks:     tasks,
		History:   history,
	})

	turn := &Turn{
		SessionID: s.id,
		Language:  s.lang,
		Decisions: make([]types.Decision, 0, len(decisions)),
	}
	for _, d := range decisions {
		applied, err := s.apply(ctx, d)
		if err != nil {
			turn.Errors = append(turn.Errors, err)
		}
		turn.Decisions = append(turn.Decisions, applied)
		audit.Decision(string(d.Kind), string(s.lang), d.String())
	}

	turn.Reply = articulation.Render(turn.Decisions, s.lang, tasks)
	turn.Redirect, _ = articulation.Redirect(turn.Decisions)

	if err := s.store.AppendExchanges(ctx, s.id, types.UserSaid(utterance), types.AssistantSaid(turn.Reply)); err != nil {
		logging.Get(logging.CategorySession).Warn("Failed to record exchange for session %s: %v", s.id, err)
		turn.Errors = append(turn.Errors, fmt.Errorf("failed to record exchange: %w", err))
	}

	turn.Duration = time.Since(start)
	audit.TurnEnd(len(turn.Decisions), turn.Duration, len(turn.Errors))
	if s.observer != nil {
		s.observer.ObserveTurn(turn.Duration, len(turn.Errors))
	}
	logging.Session("Turn complete: %d decisions, %d failures, %v", len(turn.Decisions), len(turn.Errors), turn.Duration)
	return turn, nil
}

// apply writes one decision to the store. Created tasks come back with
// their stored id.
func (s *Session) apply(ctx context.Context, d types.Decision) (types.Decision, error) {
	audit := logging.AuditWithSession(s.id)

	switch d.Kind {
	case types.DecisionCreateTask:
		stored, err := s.store.AddTask(ctx, *d.Task, string(d.Source))
		audit.DecisionApplied(string(d.Kind), d.Task.Title, err)
		if err != nil {
			return d, fmt.Errorf("failed to create task %q: %w", d.Task.Title, err)
		}
		return types.CreateTask(stored, d.Source), nil

	case types.DecisionCompleteTask:
		err := s.store.CompleteTask(ctx, d.TaskID)
		audit.DecisionApplied(string(d.Kind), d.TaskID, err)
		if err != nil {
			return d, fmt.Errorf("failed to complete task %s: %w", d.TaskID, err)
		}
	}
	return d, nil
}
