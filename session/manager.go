package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-lifelink/mapsync"
)

// Manager tracks live dashboard sessions by ID. Sessions are created when a
// browser connects and reaped after sitting idle; nothing is persisted.
type Manager struct {
	mu       sync.Mutex
	cfg      Config
	deps     Deps
	sessions map[string]*Orchestrator
	journals map[string]*mapsync.Journal
}

func NewManager(cfg Config, deps Deps) *Manager {
	return &Manager{
		cfg:      cfg,
		deps:     deps,
		sessions: make(map[string]*Orchestrator),
		journals: make(map[string]*mapsync.Journal),
	}
}

// Create builds, starts and registers a new session. Each session gets its
// own map command journal so browsers never see each other's map traffic.
func (m *Manager) Create() (*Orchestrator, error) {
	id := uuid.NewString()

	deps := m.deps
	journal := mapsync.NewJournal()
	deps.Renderer = journal

	o := New(id, m.cfg, deps)
	if err := o.Start(); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	m.mu.Lock()
	m.sessions[id] = o
	m.journals[id] = journal
	m.mu.Unlock()
	return o, nil
}

func (m *Manager) Get(id string) (*Orchestrator, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.sessions[id]
	return o, ok
}

// Journal returns the map command journal for a session.
func (m *Manager) Journal(id string) (*mapsync.Journal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.journals[id]
	return j, ok
}

// Close tears down one session and forgets it.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	o, ok := m.sessions[id]
	delete(m.sessions, id)
	delete(m.journals, id)
	m.mu.Unlock()
	if ok {
		o.Close()
	}
}

// Reap closes every session idle longer than maxIdle and returns how many
// were closed.
func (m *Manager) Reap(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	var stale []*Orchestrator
	for id, o := range m.sessions {
		if o.IdleSince().Before(cutoff) {
			stale = append(stale, o)
			delete(m.sessions, id)
			delete(m.journals, id)
		}
	}
	m.mu.Unlock()

	for _, o := range stale {
		o.Close()
		log.Printf("Reaped idle session %s", o.ID())
	}
	return len(stale)
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
