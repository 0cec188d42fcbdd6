// Package storage defines the persistence port used by the console.
package storage

import "expensetracker/internal/core"

// Repository loads and saves the complete, ordered collection of expenses.
// Implementations never mutate the records they are given.
type Repository interface {
	// Load returns every stored expense in order. An absent store is not an
	// error and yields an empty slice.
	Load() ([]core.Expense, error)
	// Save replaces the stored collection with expenses.
	Save(expenses []core.Expense) error
}
