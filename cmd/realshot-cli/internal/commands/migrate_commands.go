package commands

import (
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema
type MigrateCommandHandler struct{}

// NewMigrateCommandHandler returns a MigrateCommandHandler
func NewMigrateCommandHandler() *MigrateCommandHandler {
	return &MigrateCommandHandler{}
}

// MigrateCmd connects to the configured database and migrates every table
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := persistence.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("Database migrations completed successfully", "type", cfg.Database.Type)
	return nil
}

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler := NewMigrateCommandHandler()

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
