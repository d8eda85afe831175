// Package storage persists the expense ledger.
//
// Every repository implements the same whole-ledger contract: Load reads the
// full record set, Save rewrites it completely. There is no partial or
// streamed I/O; the ledger is small and the in-memory copy is authoritative.
package storage

import (
	"context"

	"expenses/internal/core"
)

// Outcome reports which startup path Load took.
type Outcome int

const (
	// OutcomeLoaded means existing records were read from the backing store.
	OutcomeLoaded Outcome = iota
	// OutcomeFresh means the backing store was missing or unreadable and the
	// ledger started empty. This is a recovery policy, not an error.
	OutcomeFresh
)

func (o Outcome) String() string {
	if o == OutcomeFresh {
		return "fresh"
	}
	return "loaded"
}

// Repository is the persistence contract for the ledger.
type Repository interface {
	Load(ctx context.Context) (core.Ledger, Outcome, error)
	Save(ctx context.Context, ledger core.Ledger) error
}
