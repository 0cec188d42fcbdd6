package backend

import (
	"expensetracker/internal/storage"
)

// BackendResult contains the repository and a human readable location used
// in console messages ("Saved to <Location>").
type BackendResult struct {
	Repository storage.Repository
	Location   string
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// CSV specific
	ExpensesFile string
}

// BackendType represents the type of backend
type BackendType string

const (
	CSVBackend    BackendType = "csv"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case CSVBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
