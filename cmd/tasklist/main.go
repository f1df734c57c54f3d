package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasklist/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "Personal task tracker",
		Long:          "tasklist - a personal task tracker with a JSON API and a browser view.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("error:", err)
		os.Exit(1)
	}
}

// setupLogger builds the process logger and makes it available through zap.L().
func setupLogger(conf *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if conf.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func syncLogger(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		zap.L().Debug("failed to sync logger", zap.Error(err))
	}
}
