// Package session owns the in-memory ledger for one interactive run.
//
// The session is the single writer: it loads the ledger once at startup and
// flushes the whole thing back to storage synchronously after every mutation.
// A mutation is durable only once its save has succeeded.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"expenses/internal/core"
	"expenses/internal/storage"
)

type Session struct {
	repo    storage.Repository
	ledger  core.Ledger
	outcome storage.Outcome
	started bool
}

func New(repo storage.Repository) *Session {
	return &Session{repo: repo}
}

// Start loads the ledger from storage. Missing or unreadable backing data is
// not an error; the session starts empty and records that it did.
func (s *Session) Start(ctx context.Context) error {
	ledger, outcome, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	s.ledger = ledger
	s.outcome = outcome
	s.started = true

	slog.InfoContext(ctx, "Session started",
		"records", len(ledger), "outcome", outcome.String())
	return nil
}

// Outcome reports whether Start found existing records or began fresh.
func (s *Session) Outcome() storage.Outcome {
	return s.outcome
}

// Len returns the number of records in the ledger.
func (s *Session) Len() int {
	return len(s.ledger)
}

// Expenses returns a copy of the current ledger for display. Numbering is
// the caller's concern; positions are derived from slice order.
func (s *Session) Expenses() core.Ledger {
	return append(core.Ledger{}, s.ledger...)
}

// Add normalizes and validates the expense, appends it and saves. The ledger
// is unchanged if validation or the save fails.
func (s *Session) Add(ctx context.Context, e core.Expense) error {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return err
	}

	next := append(s.ledger, e)
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	s.ledger = next
	return nil
}

// RemoveAt deletes the record at the given 1-based position and saves,
// returning the removed record. An out-of-range position is a normal
// validation outcome (core.ErrPositionOutOfRange) and leaves the ledger
// untouched.
func (s *Session) RemoveAt(ctx context.Context, position int) (core.Expense, error) {
	if position < 1 || position > len(s.ledger) {
		return core.Expense{}, core.ErrPositionOutOfRange
	}

	removed := s.ledger[position-1]
	next := make(core.Ledger, 0, len(s.ledger)-1)
	next = append(next, s.ledger[:position-1]...)
	next = append(next, s.ledger[position:]...)

	if err := s.repo.Save(ctx, next); err != nil {
		return core.Expense{}, fmt.Errorf("save ledger: %w", err)
	}
	s.ledger = next
	return removed, nil
}

// MonthlyTotals aggregates the current ledger per month, in first-seen
// order. Returns core.ErrNoExpenses when the ledger is empty.
func (s *Session) MonthlyTotals() ([]core.MonthTotal, error) {
	return core.MonthlyTotals(s.ledger)
}
