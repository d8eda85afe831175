package core

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for dates, both on disk and on screen.
const DateLayout = "02-01-2006"

// MonthLayout is the month-year key format used by the monthly summary.
const MonthLayout = "01-2006"

type (
	// Date is a calendar day. Records are always dated "now" at creation;
	// there is no backdating.
	Date struct {
		time.Time
	}

	// Money is a non-negative currency amount. Sums are exact; rounding to
	// two decimals happens only at display time.
	Money struct {
		decimal.Decimal
	}

	// Expense is one dated spend entry.
	Expense struct {
		Date        Date
		Description string
		Category    string
		Amount      Money
	}

	// Ledger is the ordered collection of all expenses for a session.
	// Insertion order is display order is persisted order.
	Ledger []Expense
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyCategory      = errors.New("empty category")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrNoExpenses         = errors.New("no expenses recorded")
)

// Today returns the current calendar date.
func Today() Date {
	return Date{Time: time.Now()}
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a dd-mm-yyyy string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the mm-yyyy bucket key for monthly aggregation.
func (d Date) MonthKey() string {
	return d.Format(MonthLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Display formats the amount with exactly two decimals, for presentation only.
func (m Money) Display() string {
	return m.StringFixed(2)
}

// Normalize trims description and category and capitalizes their first
// letter, matching how entries are displayed and stored.
func (e Expense) Normalize() Expense {
	e.Description = capitalize(e.Description)
	e.Category = capitalize(e.Category)
	return e
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return e.Amount.Validate()
}

// Equal reports whether two expenses are logically identical. Amounts
// compare by value, so 7 and 7.00 are equal.
func (e Expense) Equal(other Expense) bool {
	return e.Date.String() == other.Date.String() &&
		e.Description == other.Description &&
		e.Category == other.Category &&
		e.Amount.Decimal.Equal(other.Amount.Decimal)
}

// Validate checks every record in the ledger.
func (l Ledger) Validate() error {
	for _, e := range l {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
