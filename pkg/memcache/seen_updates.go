package mem

import (
	"sync"
	"time"
)

// SeenUpdateStore remembers relay update ids for a short window so a
// redelivered webhook is dropped before it reaches the decision handler.
// The database compare-and-set is the real guard; this just keeps the
// reviewer from receiving duplicate acknowledgments.
type SeenUpdateStore interface {
	// MarkSeen records id and reports whether it was already present
	// and unexpired.
	MarkSeen(id int64, ttl time.Duration) bool
}

type SeenUpdates struct {
	mu   sync.Mutex
	data map[int64]time.Time
}

func NewSeenUpdates() *SeenUpdates {
	return &SeenUpdates{
		data: make(map[int64]time.Time),
	}
}

func (s *SeenUpdates) MarkSeen(id int64, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if exp, ok := s.data[id]; ok && now.Before(exp) {
		return true
	}

	// Opportunistic cleanup of expired entries.
	for k, exp := range s.data {
		if now.After(exp) {
			delete(s.data, k)
		}
	}

	s.data[id] = now.Add(ttl)
	return false
}
