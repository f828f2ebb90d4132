package commands

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/bootstrap"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UserCommandHandler manages accounts from the command line
type UserCommandHandler struct{}

// NewUserCommandHandler returns a UserCommandHandler
func NewUserCommandHandler() *UserCommandHandler {
	return &UserCommandHandler{}
}

// PromoteCmd grants the ADMIN role to the account with --email
func (commandHandler *UserCommandHandler) PromoteCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if email == "" {
		return fmt.Errorf("--email is required")
	}

	return withContainer(cmd, func(ctx context.Context, c *bootstrap.Container, log logger.Logger) error {
		user, err := c.Services.Auth.PromoteToAdmin(ctx, email)
		if err != nil {
			return err
		}

		log.Info("User promoted", "user_id", user.ID, "email", user.Email)
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", user.Email, user.Role)
		return nil
	})
}

// InitUserCommands registers the users command group
func InitUserCommands(rootCmd *cobra.Command) error {
	handler := NewUserCommandHandler()

	var usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	var promoteCmd = &cobra.Command{
		Use:   "promote",
		Short: "Grant the ADMIN role to an existing account",
		Args:  cobra.NoArgs,
		RunE:  handler.PromoteCmd,
	}
	promoteCmd.Flags().StringP("email", "e", "", "Email of the account to promote")
	usersCmd.AddCommand(promoteCmd)

	rootCmd.AddCommand(usersCmd)
	return nil
}
