// expenses-report renders the backing file as an offline report: the full
// ledger plus the monthly summary, as an XLSX workbook or as CSV.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/joho/godotenv"

	"expenses/internal/core"
	"expenses/internal/export"
	"expenses/internal/storage"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Lshortfile)

	_ = godotenv.Load()

	cmdXLSX := kingpin.Command("xlsx", "Write an XLSX workbook with the ledger and monthly summary")
	xlsxOut := cmdXLSX.Flag("output", "Output file").Default("expenses.xlsx").String()

	cmdLedgerCSV := kingpin.Command("csv", "Write the ledger as CSV to stdout")
	cmdSummaryCSV := kingpin.Command("summary", "Write the monthly summary as CSV to stdout")

	input := kingpin.Flag("input", "Backing file to read").Default(storage.DefaultFileName).String()
	cmd := kingpin.Parse()

	ledger := load(*input)

	switch cmd {
	case cmdXLSX.FullCommand():
		data, err := export.LedgerXLSX(ledger)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*xlsxOut, data, 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d records)\n", *xlsxOut, len(ledger))

	case cmdLedgerCSV.FullCommand():
		if err := export.LedgerCSV(os.Stdout, ledger); err != nil {
			log.Fatal(err)
		}

	case cmdSummaryCSV.FullCommand():
		if err := export.SummaryCSV(os.Stdout, ledger); err != nil {
			if err == core.ErrNoExpenses {
				fmt.Fprintln(os.Stderr, "no expenses recorded")
				os.Exit(0)
			}
			log.Fatal(err)
		}
	}
}

func load(path string) core.Ledger {
	repo := storage.NewFileRepository(path)
	ledger, outcome, err := repo.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	if outcome == storage.OutcomeFresh {
		fmt.Fprintf(os.Stderr, "%s missing or unreadable, reporting on an empty ledger\n", path)
	}
	return ledger
}
