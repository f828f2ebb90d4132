package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/bootstrap"
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CleanupCommandHandler runs retention jobs outside the API process
type CleanupCommandHandler struct{}

// NewCleanupCommandHandler returns a CleanupCommandHandler
func NewCleanupCommandHandler() *CleanupCommandHandler {
	return &CleanupCommandHandler{}
}

// RunCleanupCmd runs the job named by --job and prints the report as JSON
func (commandHandler *CleanupCommandHandler) RunCleanupCmd(cmd *cobra.Command, _ []string) error {
	job, err := cmd.Flags().GetString("job")
	if err != nil {
		return fmt.Errorf("invalid job flag: %w", err)
	}
	if !cleanup.ValidJob(job) {
		return fmt.Errorf("unknown cleanup job %q", job)
	}

	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		report, err := c.Services.Cleanup.Run(ctx, job)
		if err != nil {
			return err
		}

		log.Info("Cleanup finished", "report", report.String())

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if report.Failed() {
			return fmt.Errorf("cleanup finished with %d failures", len(report.Failures))
		}
		return nil
	})
}

// InitCleanupCommands registers the cleanup command group
func InitCleanupCommands(rootCmd *cobra.Command) error {
	handler := NewCleanupCommandHandler()

	var cleanupCmd = &cobra.Command{
		Use:   "cleanup",
		Short: "Delete customer files past their retention",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a cleanup job (uploads, abandoned or all)",
		Args:  cobra.NoArgs,
		RunE:  handler.RunCleanupCmd,
	}
	runCmd.Flags().StringP("job", "j", cleanup.JobAll, "Job to run: uploads, abandoned or all")
	cleanupCmd.AddCommand(runCmd)

	rootCmd.AddCommand(cleanupCmd)
	return nil
}
