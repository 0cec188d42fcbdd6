package backend

import (
	"fmt"

	"expensetracker/internal/config"
	"expensetracker/internal/log"
	"expensetracker/internal/storage/csvfile"
	"expensetracker/internal/storage/memory"
)

// Factory creates repositories based on configuration
type Factory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Factory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend returns the repository selected by config.Type.
func (f *Factory) CreateBackend(config Config) (*BackendResult, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSVBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *Factory) createCSVBackend(config Config) (*BackendResult, error) {
	if config.ExpensesFile == "" {
		return nil, fmt.Errorf("csv backend requires a file path")
	}
	store := csvfile.New(config.ExpensesFile, f.logger)

	f.logger.Info("Initialized CSV backend", log.FieldPath, store.Path())

	return &BackendResult{
		Repository: store,
		Location:   store.Path(),
	}, nil
}

func (f *Factory) createMemoryBackend() (*BackendResult, error) {
	f.logger.Info("Initialized memory backend")

	return &BackendResult{
		Repository: memory.New(nil),
		Location:   "memory (not persisted)",
	}, nil
}

// ConfigFromAppConfig converts application config to backend config
func ConfigFromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:         BackendType(appConfig.DataBackend),
		ExpensesFile: appConfig.ExpensesFile,
	}
}
