package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

// DateLayout is the conventional layout of Expense.Date.
const DateLayout = "2006-01-02"

// Expense is a single expense entry. Date is kept as opaque text so that
// hand-edited files round-trip unchanged.
type Expense struct {
	ID          int
	Date        string
	Category    string
	Description string // optional
	Amount      float64
}

var (
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth   = errors.New("month must be 1..12")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must be >= 0")
	ErrEmptyCategory  = errors.New("category required")
)

// ValidateDate checks that s is a calendar date in DateLayout.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func validateAmount(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return ErrInvalidAmount
	}
	if a < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Validate applies the rules used when an expense is entered interactively.
// Records decoded from disk are not validated.
func (e Expense) Validate() error {
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return validateAmount(e.Amount)
}

// InMonth reports whether the expense date starts with the yyyy-MM prefix.
func (e Expense) InMonth(year, month int) bool {
	return strings.HasPrefix(e.Date, monthPrefix(year, month))
}
