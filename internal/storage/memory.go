package storage

import (
	"context"
	"sync"

	"expenses/internal/core"
)

// MemoryRepository keeps the ledger in process memory only. It backs the
// "memory" backend and the test suites. The mutex is defense in depth; the
// application itself is single-threaded.
type MemoryRepository struct {
	mu     sync.Mutex
	ledger core.Ledger
	saved  bool
	saves  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SeedMemoryRepository returns a repository preloaded with the given ledger,
// which the first Load reports as OutcomeLoaded.
func SeedMemoryRepository(ledger core.Ledger) *MemoryRepository {
	return &MemoryRepository{ledger: snapshot(ledger), saved: true}
}

func (r *MemoryRepository) Load(_ context.Context) (core.Ledger, Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.saved {
		return core.Ledger{}, OutcomeFresh, nil
	}
	return snapshot(r.ledger), OutcomeLoaded, nil
}

func (r *MemoryRepository) Save(_ context.Context, ledger core.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger = snapshot(ledger)
	r.saved = true
	r.saves++
	return nil
}

// Saves reports how many times Save has run, so tests can assert the
// flush-after-every-mutation policy.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func snapshot(l core.Ledger) core.Ledger {
	return append(core.Ledger{}, l...)
}
