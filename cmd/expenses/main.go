package main

import (
	"os"

	"expensetracker/internal/backend"
	"expensetracker/internal/cli"
	"expensetracker/internal/console"
	"expensetracker/internal/log"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	cfg, logger := cli.LoadAndValidateConfig()

	factory := backend.NewFactory(logger)
	result, err := factory.CreateBackend(backend.ConfigFromAppConfig(cfg))
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}

	app := console.New(os.Stdin, os.Stdout, result.Repository, result.Location, logger)
	if err := app.Run(); err != nil {
		logger.Error("Exited with unsaved changes", log.FieldError, err)
		os.Exit(1)
	}
}
