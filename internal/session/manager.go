package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/command"
	"github.com/Gourav-Tailor/food-ai/internal/pricing"
)

var ErrSessionNotFound = errors.New("session not found")

// Result is what one utterance or direct command produced.
type Result struct {
	Command command.Command `json:"command"`
	Ack     string          `json:"ack"`
	Stage   Stage           `json:"stage"`
	Totals  pricing.Totals  `json:"totals"`
}

// Manager owns the live sessions. Each session has a single logical owner:
// commands against one session are serialized by its mutex, while different
// sessions proceed independently. The NLU round trip runs outside the session
// lock; a command that comes back after the stage moved on is discarded.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	store       *catalog.Store
	resolver    *command.Resolver
	taxRate     float64
	deliveryFee float64
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

func NewManager(store *catalog.Store, resolver *command.Resolver, taxRate, deliveryFee float64) *Manager {
	return &Manager{
		sessions:    make(map[string]*entry),
		store:       store,
		resolver:    resolver,
		taxRate:     taxRate,
		deliveryFee: deliveryFee,
	}
}

func (m *Manager) Create() *Session {
	s := New(m.store, m.taxRate, m.deliveryFee)
	m.mu.Lock()
	m.sessions[s.ID] = &entry{session: s}
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	e, err := m.entry(id)
	if err != nil {
		return nil, err
	}
	return e.session, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) entry(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// --------------------------------------------------
// Utterance path (voice)
// --------------------------------------------------

// Say resolves an utterance and applies the result. The stage profile and
// generation are snapshotted under the lock, the NLU call runs unlocked, and
// the apply re-checks the generation — a stage change during the round trip
// drops the command rather than applying it against the wrong stage.
func (m *Manager) Say(ctx context.Context, id, utterance string) (Result, error) {
	e, err := m.entry(id)
	if err != nil {
		return Result{}, err
	}

	e.mu.Lock()
	profile := e.session.Profile()
	resolvedAt := e.session.Generation()
	e.mu.Unlock()

	cmd := m.resolver.Resolve(ctx, profile, utterance)

	e.mu.Lock()
	defer e.mu.Unlock()

	ack, err := e.session.ApplyResolved(cmd, resolvedAt)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Command: cmd,
		Ack:     ack,
		Stage:   e.session.Stage,
		Totals:  e.session.Totals(),
	}, nil
}

// --------------------------------------------------
// Direct command path (UI)
// --------------------------------------------------

// Dispatch applies an already-typed command, bypassing resolution. UI actions
// take this path.
func (m *Manager) Dispatch(id string, cmd command.Command) (Result, error) {
	e, err := m.entry(id)
	if err != nil {
		return Result{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ack := e.session.Apply(cmd)
	return Result{
		Command: cmd,
		Ack:     ack,
		Stage:   e.session.Stage,
		Totals:  e.session.Totals(),
	}, nil
}

// WithSession runs fn while holding the session's lock. Cart endpoints use it
// so no mutation bypasses the per-session owner.
func (m *Manager) WithSession(id string, fn func(*Session) error) error {
	e, err := m.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}
