package csvfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"expensetracker/internal/core"
	"expensetracker/internal/log"
)

// Store reads and writes a single CSV file. It holds no open handle between
// calls; every Load and Save opens the file and closes it before returning.
// Concurrent use against the same path is not supported.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for path. A nil logger falls back to slog.Default.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.Config{Handler: slog.Default().Handler()})
	}
	return &Store{
		path:   path,
		logger: logger.WithComponent(log.ComponentStorage),
	}
}

// Path returns the file the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load implements storage.Repository. A missing file yields no expenses
// and no error, as does a path whose parent is not a directory.
func (s *Store) Load() ([]core.Expense, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		s.logger.Debug("Expense file not found, starting empty", log.FieldPath, s.path)
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open expenses file: %w", err)
	}
	defer f.Close()

	res, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode expenses file: %w", err)
	}

	for _, sk := range res.Skipped {
		s.logger.Warn("Skipped malformed row",
			log.FieldPath, s.path,
			log.FieldLine, sk.Line,
			log.FieldError, sk.Err)
	}
	s.logger.Info("Expenses loaded",
		log.FieldPath, s.path,
		log.FieldOperation, log.OpLoad,
		log.FieldCount, len(res.Expenses),
		log.FieldSkipped, len(res.Skipped))

	return res.Expenses, nil
}

// Save implements storage.Repository. The file is truncated and rewritten
// in full; there is no backup of the previous content.
func (s *Store) Save(expenses []core.Expense) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create expenses file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close expenses file: %w", cerr)
		}
	}()

	if err := Encode(f, expenses); err != nil {
		return fmt.Errorf("encode expenses file: %w", err)
	}

	s.logger.Info("Expenses saved",
		log.FieldPath, s.path,
		log.FieldOperation, log.OpSave,
		log.FieldCount, len(expenses))
	return nil
}
