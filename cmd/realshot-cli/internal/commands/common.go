package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/GRBalance8/realshot-sub001/internal/bootstrap"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	configFlag        = "config"
	defaultConfigPath = "configs/rest-app.yaml"
)

// AddConfigFlag registers the persistent --config flag on the root command
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the YAML configuration (default $CONFIG_PATH or "+defaultConfigPath+")")
}

func configPath(cmd *cobra.Command) string {
	if path, err := cmd.Root().PersistentFlags().GetString(configFlag); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

// loadConfig reads the configuration and initializes the logger it describes
func loadConfig(cmd *cobra.Command) (*config.RestConfig, logger.Logger, error) {
	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return cfg, log, nil
}

// withContainer wires the application, runs fn and releases the connections
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	container, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer container.Close()

	return fn(ctx, container, log)
}
