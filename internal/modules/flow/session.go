package flow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
)

type Session struct {
	ID         string
	Controller *Controller
	CreatedAt  time.Time

	mu           sync.Mutex
	lastActivity time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Manager owns the try-on sessions. Deleting a session tears its controller down.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  func() *Controller
}

func NewManager(factory func() *Controller) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

func (m *Manager) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:           uuid.New().String(),
		Controller:   m.factory(),
		CreatedAt:    now,
		lastActivity: now,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	active := len(m.sessions)
	m.mu.Unlock()
	logs.Logger.Info().Str("session_id", s.ID).Int("active", active).Msg("session created")
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch()
	}
	return s, ok
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.Controller.Close()
	logs.Logger.Info().Str("session_id", id).Msg("session closed")
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than maxIdle and reports how many it closed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	deadline := time.Now().Add(-maxIdle)
	var expired []string
	m.mu.RLock()
	for id, s := range m.sessions {
		if s.idleSince().Before(deadline) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()
	closed := 0
	for _, id := range expired {
		if m.Delete(id) {
			closed++
		}
	}
	return closed
}

// RunSweeper sweeps every interval until ctx is done, then closes all remaining sessions.
func (m *Manager) RunSweeper(ctx context.Context, wg *sync.WaitGroup, interval, maxIdle time.Duration) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := m.Sweep(maxIdle); n > 0 {
					logs.Logger.Info().Int("closed", n).Msg("idle sessions swept")
				}
			case <-ctx.Done():
				m.closeAll()
				logs.Logger.Info().Msg("session sweeper stopped")
				return
			}
		}
	}()
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Controller.Close()
	}
}
