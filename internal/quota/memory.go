package quota

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
)

// MemoryRepository keeps records in a map. It implements Incrementer, so a
// Meter over it is race-free within one process.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[string]Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: map[string]Record{}}
}

func (r *MemoryRepository) Get(_ context.Context, userID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[userID]
	if !ok {
		return Record{}, common.ErrorNotFound
	}
	return rec, nil
}

func (r *MemoryRepository) Put(_ context.Context, userID string, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[userID] = rec
	return nil
}

func (r *MemoryRepository) Increment(_ context.Context, userID, today string, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[userID]
	if rec.Date != today {
		rec = Record{Date: today}
	}
	rec.CountToday++
	rec.UpdatedAt = now
	r.records[userID] = rec
	return rec.CountToday, nil
}
