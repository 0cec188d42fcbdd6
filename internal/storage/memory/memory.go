// Package memory is a session-only Repository: Save keeps a copy of the
// collection in process memory and Load hands it back.
package memory

import (
	"sync"

	"expensetracker/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Expense
	saves int
}

func New(seed []core.Expense) *Store {
	return &Store{items: clone(seed)}
}

// Load returns a copy of the last saved collection.
func (s *Store) Load() ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items), nil
}

// Save replaces the stored collection with a copy of expenses.
func (s *Store) Save(expenses []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = clone(expenses)
	s.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func clone(in []core.Expense) []core.Expense {
	return append([]core.Expense{}, in...)
}
