package core

import (
	"errors"
	"testing"
)

func expense(d Date, desc string, amount Money) Expense {
	return Expense{Date: d, Description: desc, Category: "Misc", Amount: amount}
}

func TestMonthlyTotals(t *testing.T) {
	ledger := Ledger{
		expense(NewDate(2024, 1, 1), "Groceries", NewMoney(10, 0)),
		expense(NewDate(2024, 1, 15), "Coffee", NewMoney(5, 0)),
		expense(NewDate(2024, 2, 2), "Bus", NewMoney(7, 0)),
	}
	totals, err := MonthlyTotals(ledger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != "01-2024" || totals[0].Total.Display() != "15.00" {
		t.Fatalf("month 0: got %s %s", totals[0].Month, totals[0].Total.Display())
	}
	if totals[1].Month != "02-2024" || totals[1].Total.Display() != "7.00" {
		t.Fatalf("month 1: got %s %s", totals[1].Month, totals[1].Total.Display())
	}
}

func TestMonthlyTotalsFirstSeenOrder(t *testing.T) {
	// December appears before May in the ledger, so it comes first in the
	// summary even though May precedes it chronologically.
	ledger := Ledger{
		expense(NewDate(2024, 12, 5), "Gift", NewMoney(20, 0)),
		expense(NewDate(2024, 5, 1), "Lunch", NewMoney(8, 0)),
		expense(NewDate(2024, 12, 24), "Dinner", NewMoney(30, 0)),
	}
	totals, err := MonthlyTotals(ledger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"12-2024", "05-2024"}
	for i, m := range want {
		if totals[i].Month != m {
			t.Fatalf("position %d: expected %s, got %s", i, m, totals[i].Month)
		}
	}
	if totals[0].Total.Display() != "50.00" {
		t.Fatalf("expected 50.00 for 12-2024, got %s", totals[0].Total.Display())
	}
}

func TestMonthlyTotalsEmptyLedger(t *testing.T) {
	totals, err := MonthlyTotals(Ledger{})
	if !errors.Is(err, ErrNoExpenses) {
		t.Fatalf("expected ErrNoExpenses, got %v", err)
	}
	if totals != nil {
		t.Fatalf("expected nil totals, got %v", totals)
	}
}

func TestMonthlyTotalsNoIntermediateRounding(t *testing.T) {
	ledger := Ledger{}
	third, _ := ParseAmount("0.005")
	for i := 0; i < 3; i++ {
		ledger = append(ledger, expense(NewDate(2024, 3, 1+i), "Tiny", third))
	}
	totals, err := MonthlyTotals(ledger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 * 0.005 = 0.015 exactly; float accumulation would drift.
	if totals[0].Total.String() != "0.015" {
		t.Fatalf("expected exact 0.015, got %s", totals[0].Total.String())
	}
}
