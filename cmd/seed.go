package cmd

import (
	"fmt"

	"catalog-store/internal/wire"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *wire.App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo users, products and orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureSchema(ctx, app); err != nil {
				return err
			}

			seeded, err := app.Service.Catalog.Seed(ctx)
			if err != nil {
				return err
			}

			if !seeded {
				fmt.Println("already seeded, nothing to do")
				return nil
			}

			fmt.Println("seed complete")
			return nil
		},
	}
}
