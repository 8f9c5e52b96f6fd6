package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore keeps records in memory, newest first. Used when no
// postgres DSN is configured.
type MemStore struct {
	mu      sync.RWMutex
	records []Record
	max     int
}

const defaultMemStoreCap = 1000

func NewMemStore() *MemStore {
	return &MemStore{max: defaultMemStoreCap}
}

func (s *MemStore) Save(_ context.Context, rec Record) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if len(s.records) > s.max {
		s.records = s.records[len(s.records)-s.max:]
	}
	return rec.ID, nil
}

func (s *MemStore) Recent(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]Record, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}
