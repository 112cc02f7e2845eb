package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voltcheck/voltcheck/internal/config"
	"github.com/voltcheck/voltcheck/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "voltcheck-api",
	Short: "voltcheck-api serves the field-test report API",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}

// setup reads the configuration and installs the process logger.
// The returned func restores the previous logger and flushes the new one.
func setup() (*config.Config, func()) {
	cfg, err := config.New()
	if err != nil {
		zap.S().Fatalw("reading configuration", "error", err)
	}

	logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
	undo := zap.ReplaceGlobals(logger)

	return cfg, func() {
		_ = logger.Sync()
		undo()
	}
}
