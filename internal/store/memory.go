// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Holds one game.State per HTTP client session.
//
// Characteristics:
//   - Sessions keyed by a UUID string in a map.
//   - Map access guarded by RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Session carries its own mutex; handlers hold it while touching the game.
//   - State is lost when the process restarts.
//   - Idle sessions are dropped by Sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordgame/internal/game"
)

// ErrNotFound is returned by Get for unknown or swept session ids.
var ErrNotFound = errors.New("session not found")

// Session is a single client's game plus bookkeeping.
type Session struct {
	ID    string
	Daily bool

	mu         sync.Mutex
	game       *game.State
	lastAccess time.Time
}

// NewSession wraps g under a fresh id.
func NewSession(g *game.State, daily bool) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Daily:      daily,
		game:       g,
		lastAccess: time.Now(),
	}
}

// With runs fn with exclusive access to the session's game and marks the
// session as used.
func (s *Session) With(fn func(g *game.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = time.Now()
	fn(s.game)
}

// idleSince reports whether the session was last used before cutoff.
func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess.Before(cutoff)
}

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete drops a session; unknown ids are not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions idle for longer than maxAge and returns how many.
	Sweep(ctx context.Context, maxAge time.Duration) int

	// Len is the number of live sessions.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session), now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxAge time.Duration) int {
	cutoff := m.now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.idleSince(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// RunSweeper calls Sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, st Store, interval, maxAge time.Duration, onSweep func(n int)) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Sweep(ctx, maxAge); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
