package resultstore

import (
	"sync"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
)

// MemoryStore keeps wallet results in memory. Safe for one writer and many readers.
type MemoryStore struct {
	mu      sync.RWMutex
	results []entity.PipelineResult
}

var _ port.ResultStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends result.
func (s *MemoryStore) Record(result entity.PipelineResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

// All returns a copy of every recorded result in insertion order.
func (s *MemoryStore) All() []entity.PipelineResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.PipelineResult(nil), s.results...)
}

// Failed returns a copy of the failed results in insertion order.
func (s *MemoryStore) Failed() []entity.PipelineResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.PipelineResult, 0)
	for _, r := range s.results {
		if !r.Succeeded() {
			out = append(out, r)
		}
	}
	return out
}
