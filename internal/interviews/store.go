package interviews

import (
	"context"
	"sync"
)

// Store is the document store boundary: one atomic insert per record.
type Store interface {
	Add(ctx context.Context, collection string, record any) (string, error)
}

// MemoryStore keeps records in memory. Used in tests and as a fallback when
// no database is configured.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]any
	adds    int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]any)}
}

// Add appends the record to the named collection.
func (s *MemoryStore) Add(ctx context.Context, collection string, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[collection] = append(s.records[collection], record)
	s.adds++
	return newRecordID(), nil
}

// Records returns the stored records for a collection.
func (s *MemoryStore) Records(collection string) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]any, len(s.records[collection]))
	copy(out, s.records[collection])
	return out
}

// Adds reports how many inserts the store has received.
func (s *MemoryStore) Adds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adds
}
