package cmd

import (
	"fmt"
	"strconv"

	"catalog-store/internal/wire"

	"github.com/spf13/cobra"
)

func newDeleteUserCmd(app *wire.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <user-id>",
		Short: "Delete a user and all of their orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("user-id must be an integer: %q", args[0])
			}

			ctx := cmd.Context()
			if err := ensureSchema(ctx, app); err != nil {
				return err
			}

			if err := app.Service.User.DeleteUser(ctx, userID); err != nil {
				return err
			}

			fmt.Printf("user %d deleted (orders included)\n", userID)
			return nil
		},
	}
}
