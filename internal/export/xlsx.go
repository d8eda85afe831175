// Package export writes ledger reports for use outside the tracker.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"expenses/internal/core"
)

// LedgerXLSX renders the ledger and its monthly summary as an XLSX workbook
// with one sheet per view.
func LedgerXLSX(ledger core.Ledger) ([]byte, error) {
	xlsx := excelize.NewFile()

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, "Expenses"); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	_ = xlsx.SetColWidth("Expenses", "A", "A", 6)
	_ = xlsx.SetColWidth("Expenses", "B", "B", 12)
	_ = xlsx.SetColWidth("Expenses", "C", "C", 40)
	_ = xlsx.SetColWidth("Expenses", "D", "D", 20)
	_ = xlsx.SetColWidth("Expenses", "E", "E", 12)

	bold, _ := xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	headers := []string{"#", "Date", "Description", "Category", "Amount"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		_ = xlsx.SetCellValue("Expenses", cell, h)
		_ = xlsx.SetCellStyle("Expenses", cell, cell, bold)
	}
	for i, e := range ledger {
		row := i + 2
		_ = xlsx.SetCellValue("Expenses", fmt.Sprintf("A%d", row), i+1)
		_ = xlsx.SetCellValue("Expenses", fmt.Sprintf("B%d", row), e.Date.String())
		_ = xlsx.SetCellValue("Expenses", fmt.Sprintf("C%d", row), e.Description)
		_ = xlsx.SetCellValue("Expenses", fmt.Sprintf("D%d", row), e.Category)
		_ = xlsx.SetCellValue("Expenses", fmt.Sprintf("E%d", row), e.Amount.InexactFloat64())
	}

	if totals, err := core.MonthlyTotals(ledger); err == nil {
		if _, err := xlsx.NewSheet("Monthly Summary"); err != nil {
			return nil, fmt.Errorf("create summary sheet: %w", err)
		}
		_ = xlsx.SetColWidth("Monthly Summary", "A", "A", 12)
		_ = xlsx.SetColWidth("Monthly Summary", "B", "B", 14)
		_ = xlsx.SetCellValue("Monthly Summary", "A1", "Month")
		_ = xlsx.SetCellValue("Monthly Summary", "B1", "Total")
		_ = xlsx.SetCellStyle("Monthly Summary", "A1", "B1", bold)
		for i, mt := range totals {
			row := i + 2
			_ = xlsx.SetCellValue("Monthly Summary", fmt.Sprintf("A%d", row), mt.Month)
			_ = xlsx.SetCellValue("Monthly Summary", fmt.Sprintf("B%d", row), mt.Total.InexactFloat64())
		}
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
