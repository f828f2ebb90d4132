// Package main is the entry point for the realshot-cli application.
// It registers the maintenance sub-commands (migrate, cleanup, users) and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/GRBalance8/realshot-sub001/cmd/realshot-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "realshot-cli",
		Short: "RealShot maintenance CLI tool",
		Long: `realshot-cli runs maintenance tasks against the RealShot database and blob store.
It reads the same YAML configuration as the REST API. The path is taken from --config,
then from CONFIG_PATH, then defaults to configs/rest-app.yaml.`,
		SilenceUsage: true,
	}

	commands.AddConfigFlag(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitCleanupCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cleanup commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
