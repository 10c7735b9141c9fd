package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Store keeps one session per user id. Put is a full replace, never a merge.
type Store interface {
	Get(userID string) (Session, bool)
	Put(userID string, s Session)
	Remove(userID string)
	Len() int
	SweepIdle(maxIdle time.Duration, now time.Time) int
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[string]Session{}}
}

func (m *memoryStore) Get(userID string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

func (m *memoryStore) Put(userID string, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

func (m *memoryStore) Remove(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

func (m *memoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *memoryStore) SweepIdle(maxIdle time.Duration, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastActivity) > maxIdle {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper evicts idle sessions every interval until ctx is cancelled.
func StartSweeper(ctx context.Context, st Store, maxIdle, interval time.Duration, log *logrus.Entry) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.SweepIdle(maxIdle, now); n > 0 {
				log.WithField("removed", n).Info("evicted idle sessions")
			}
		}
	}
}
