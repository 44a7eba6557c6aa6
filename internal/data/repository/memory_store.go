package repository

import (
	"context"
	"sync"
	"time"

	"tourism-booking/internal/data/entity"
)

// MemoryStore keeps collections in process memory. It backs local runs
// without a database and the HTTP tests; ids are assigned per collection
// starting at 1.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]entity.Record
	nextID      map[string]int64
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]entity.Record),
		nextID:      make(map[string]int64),
		now:         time.Now,
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, record entity.Record) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[collection]++
	stored := record.Clone()
	stored["id"] = s.nextID[collection]
	stored["created_at"] = s.now().UTC().Format(time.RFC3339Nano)

	s.collections[collection] = append(s.collections[collection], stored)
	return []entity.Record{stored.Clone()}, nil
}

func (s *MemoryStore) SelectAll(ctx context.Context, collection string) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]entity.Record, 0, len(s.collections[collection]))
	for _, rec := range s.collections[collection] {
		records = append(records, rec.Clone())
	}
	return records, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
