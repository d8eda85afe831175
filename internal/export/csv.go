package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"expenses/internal/core"
)

// LedgerCSV writes the ledger as CSV with a header row. Amounts keep their
// exact decimal form.
func LedgerCSV(w io.Writer, ledger core.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Category", "Amount"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range ledger {
		rec := []string{e.Date.String(), e.Description, e.Category, e.Amount.String()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SummaryCSV writes the monthly totals as CSV, one row per month in
// first-seen order.
func SummaryCSV(w io.Writer, ledger core.Ledger) error {
	totals, err := core.MonthlyTotals(ledger)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"#", "Month", "Total"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, mt := range totals {
		rec := []string{strconv.Itoa(i + 1), mt.Month, mt.Total.Display()}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
