package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"expenses/internal/core"
)

// SQLiteRepository stores the ledger in a local SQLite database. It honors
// the same whole-ledger contract as the file backend: Save replaces all rows
// in one transaction, Load reads them back in stored order.
type SQLiteRepository struct {
	db    *sql.DB
	fresh bool
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	_, statErr := os.Stat(dbPath)
	fresh := os.IsNotExist(statErr)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, fresh: fresh}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (core.Ledger, Outcome, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, description, category, amount FROM expenses ORDER BY position`)
	if err != nil {
		return nil, OutcomeFresh, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	var ledger core.Ledger
	for rows.Next() {
		var dateStr, desc, cat, amountStr string
		if err := rows.Scan(&dateStr, &desc, &cat, &amountStr); err != nil {
			return nil, OutcomeFresh, fmt.Errorf("scan expense row: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, OutcomeFresh, fmt.Errorf("stored date %q: %w", dateStr, err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, OutcomeFresh, fmt.Errorf("stored amount %q: %w", amountStr, err)
		}
		ledger = append(ledger, core.Expense{
			Date:        date,
			Description: desc,
			Category:    cat,
			Amount:      core.Money{Decimal: amount},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, OutcomeFresh, fmt.Errorf("iterate expense rows: %w", err)
	}

	outcome := OutcomeLoaded
	if r.fresh {
		outcome = OutcomeFresh
		r.fresh = false
	}
	if ledger == nil {
		ledger = core.Ledger{}
	}

	slog.InfoContext(ctx, "Ledger loaded from SQLite",
		"records", len(ledger), "outcome", outcome.String())
	return ledger, outcome, nil
}

// Save replaces the stored ledger with the given one. Positions are derived
// from slice order, never reused from previous saves.
func (r *SQLiteRepository) Save(ctx context.Context, ledger core.Ledger) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	for i, e := range ledger {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (position, date, description, category, amount) VALUES (?, ?, ?, ?, ?)`,
			i+1, e.Date.String(), e.Description, e.Category, e.Amount.String())
		if err != nil {
			return fmt.Errorf("insert expense %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}

	slog.DebugContext(ctx, "Ledger saved to SQLite", "records", len(ledger))
	return nil
}
