package core

// MonthTotal is the summed amount for one mm-yyyy month.
type MonthTotal struct {
	Month string
	Total Money
}

// MonthlyTotals groups the ledger's amounts by month.
//
// The result is ordered by first encounter: a month appears at the position
// where its first record was seen while scanning the ledger in stored order.
// This matches the historical summary output and is deliberately not
// chronological. Sums are exact; callers round only when formatting.
//
// An empty ledger returns ErrNoExpenses so callers can render a specific
// "no data" message instead of an empty table.
func MonthlyTotals(ledger Ledger) ([]MonthTotal, error) {
	if len(ledger) == 0 {
		return nil, ErrNoExpenses
	}

	index := make(map[string]int, len(ledger))
	totals := make([]MonthTotal, 0, len(ledger))
	for _, e := range ledger {
		key := e.Date.MonthKey()
		i, ok := index[key]
		if !ok {
			index[key] = len(totals)
			totals = append(totals, MonthTotal{Month: key, Total: e.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
	}
	return totals, nil
}
