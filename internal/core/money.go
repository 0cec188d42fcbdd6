// Package core provides the expense record, the in-memory ledger and the
// input parsing used when entries are typed at the prompt.
//
// This file contains amount parsing and formatting helpers.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts user input to a non-negative amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Returns ErrInvalidAmount for anything that is not a finite number and
// ErrNegativeAmount for values below zero.
//
// Examples:
//
//	ParseAmount("12.5")  -> 12.5, nil
//	ParseAmount("12,50") -> 12.5, nil
//	ParseAmount("-1")    -> 0, ErrNegativeAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if err := validateAmount(v); err != nil {
		return 0, err
	}
	return v, nil
}

// FormatAmount renders an amount with two decimals for display.
// Persistence uses the shortest decimal form instead, see csvfile.
func FormatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', 2, 64)
}
