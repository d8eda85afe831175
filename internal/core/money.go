// Package core holds the domain types for the expense ledger.
//
// This file contains amount parsing: turning user input into a Money value
// or an explicit rejection, never a panic.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string into a Money value.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Negative
// amounts are rejected; zero is allowed. Returns ErrInvalidAmount for
// anything that is not a plain non-negative decimal.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, nil
//	ParseAmount("-1")    -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	return Money{d}, nil
}

// NewMoney builds a Money from an integer units and cents pair, mostly
// useful in tests. NewMoney(12, 34) is 12.34.
func NewMoney(units int64, cents int64) Money {
	return Money{decimal.New(units*100+cents, -2)}
}
