package cmd

import (
	"fmt"
	"math"

	"blobls/core/config"
	"blobls/core/logger"
	"blobls/core/storage"
	"blobls/core/storage/provider"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newClient is replaced in tests.
var newClient = provider.New

// setup loads configuration, applies flag overrides and builds the logger and client.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, storage.Client, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, nil, nil, err
	}
	if n := cfg.Storage.PageSize; n < 0 || n > math.MaxInt32 {
		return nil, nil, nil, fmt.Errorf("page size must be between 0 and %d, got %d", math.MaxInt32, n)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg, _ = logger.WithRunID(logg.With(zap.String("provider", cfg.Storage.ProviderName())))
	zap.ReplaceGlobals(logg)

	client, err := newClient(cfg.Storage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return cfg, logg, client, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Storage.Provider, _ = flags.GetString("provider")
	}
	if flags.Changed("prefix") {
		cfg.Storage.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("delimiter") {
		cfg.Storage.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Changed("page-size") {
		cfg.Storage.PageSize, _ = flags.GetInt("page-size")
	}
	return nil
}
