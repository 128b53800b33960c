package cmd

import (
	"context"
	"os"

	"catalog-store/internal/wire"

	"github.com/spf13/cobra"
)

func newReportCmd(app *wire.App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the users, products, orders and order-totals sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), app)
		},
	}
}

func runReport(ctx context.Context, app *wire.App) error {
	if err := ensureSchema(ctx, app); err != nil {
		return err
	}
	return app.Service.Report.Render(ctx, os.Stdout)
}
