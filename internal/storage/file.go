package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"expenses/internal/core"
)

// DefaultFileName is the backing file used when no path is configured.
const DefaultFileName = "expenses.txt"

// record is the on-disk shape of one expense. The field names and casing are
// a compatibility surface with pre-existing files and must not change.
type record struct {
	Date        string      `json:"Date"`
	Description string      `json:"Description"`
	Category    string      `json:"Category"`
	Amount      json.Number `json:"Amount"`
}

// FileRepository stores the ledger as a pretty-printed JSON array in a single
// text file. Saves rewrite the whole file; a crash mid-write can leave a
// truncated file, which the next Load treats as unreadable and recovers from
// by starting fresh. That is a known limitation of the whole-file design.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	if path == "" {
		path = DefaultFileName
	}
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the whole backing file. A missing file or one whose contents do
// not decode as a valid ledger yields an empty ledger with OutcomeFresh and
// no error. Any other read failure is returned to the caller.
func (r *FileRepository) Load(ctx context.Context) (core.Ledger, Outcome, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.InfoContext(ctx, "Backing file not found, starting fresh", "path", r.path)
			return core.Ledger{}, OutcomeFresh, nil
		}
		return nil, OutcomeFresh, fmt.Errorf("read backing file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "Backing file not decodable, starting fresh",
			"path", r.path, "error", err)
		return core.Ledger{}, OutcomeFresh, nil
	}

	ledger := make(core.Ledger, 0, len(records))
	for i, rec := range records {
		e, err := rec.toExpense()
		if err != nil {
			slog.WarnContext(ctx, "Backing file holds an invalid record, starting fresh",
				"path", r.path, "index", i, "error", err)
			return core.Ledger{}, OutcomeFresh, nil
		}
		ledger = append(ledger, e)
	}

	slog.InfoContext(ctx, "Ledger loaded", "path", r.path, "records", len(ledger))
	return ledger, OutcomeLoaded, nil
}

// Save rewrites the backing file with the full ledger, indented four spaces
// for human inspection. Failures are returned as-is; there is no retry.
func (r *FileRepository) Save(ctx context.Context, ledger core.Ledger) error {
	records := make([]record, len(ledger))
	for i, e := range ledger {
		records[i] = fromExpense(e)
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write backing file: %w", err)
	}

	slog.DebugContext(ctx, "Ledger saved", "path", r.path, "records", len(ledger))
	return nil
}

func (rec record) toExpense() (core.Expense, error) {
	date, err := core.ParseDate(rec.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("date %q: %w", rec.Date, err)
	}
	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return core.Expense{}, fmt.Errorf("amount %q: %w", rec.Amount, err)
	}
	e := core.Expense{
		Date:        date,
		Description: rec.Description,
		Category:    rec.Category,
		Amount:      core.Money{Decimal: amount},
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return e, nil
}

func fromExpense(e core.Expense) record {
	return record{
		Date:        e.Date.String(),
		Description: e.Description,
		Category:    e.Category,
		Amount:      json.Number(e.Amount.String()),
	}
}
