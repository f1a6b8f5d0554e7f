// Package main is the entry point for the charsheet converter
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-sheetfill/internal/config"
	"github.com/KirkDiggler/rpg-sheetfill/internal/errors"
	"github.com/KirkDiggler/rpg-sheetfill/internal/logging"
)

var (
	envFile     string
	logLevel    string
	development bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "charsheet",
	Short: "Convert character builder exports into printable sheets",
	Long: `charsheet reads a character export (XML) and either prints an indented
report to the console or overlays the resolved values onto a PDF form.

Defaults come from CHARSHEET_* environment variables and an optional .env
file; flags override both.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file with CHARSHEET_* defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&development, "dev", false, "human readable development logs")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(evalCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("dev") {
		cfg.Development = development
	}

	logger, err = logging.New(cfg.LogLevel, cfg.Development)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
