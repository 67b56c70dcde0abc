package results

import (
	"context"
	"sync"
)

// MemoryStore keeps results in process memory. Used by tests and by DB-less
// runs; mirrors the SQL store's scoping rules.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *MemoryStore) StatsFor(_ context.Context, scope Scope) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var samples []statsRow
	// Newest-first, matching the SQL store's ORDER BY created_at DESC.
	for i := len(m.records) - 1; i >= 0; i-- {
		rec := m.records[i]
		if scope.Authenticated {
			if rec.UserID != scope.UserID {
				continue
			}
		} else {
			if rec.UserType != UserTypeAnonymous {
				continue
			}
			if len(samples) >= anonymousWindow {
				break
			}
		}
		samples = append(samples, statsRow{
			Score:          rec.Score,
			TotalQuestions: rec.TotalQuestions,
			Passed:         rec.Passed,
			Minutes:        rec.TimeTakenMinutes,
			HasMinutes:     true,
		})
	}
	return aggregate(samples), nil
}

// Len reports the number of stored records.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
