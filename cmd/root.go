package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blobls/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// It runs the full listing, like the list subcommand.
var RootCmd = &cobra.Command{
	Use:   "blobls",
	Short: "List the containers and blobs of a storage account",
	Long: `blobls enumerates every container of a storage account and prints the blobs
each one holds. Credentials are read from STORAGE_ACCOUNT and STORAGE_ACCESS_KEY
(environment or .env file).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runList,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling so a second interrupt kills the process.
	context.AfterFunc(ctx, stop)

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()

		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	addListFlags(RootCmd)
}
