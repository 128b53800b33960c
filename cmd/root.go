package cmd

import (
	"context"

	"catalog-store/internal/wire"
	"catalog-store/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the CLI. The bare command prints the catalog report,
// everything else is an explicit subcommand.
func Execute(app *wire.App, config *utils.Config, logger *zap.Logger) error {
	root := &cobra.Command{
		Use:          "catalog-store",
		Short:        "Catalog store over Postgres: users, products, orders",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newReportCmd(app),
		newSeedCmd(app),
		newSetPriceCmd(app),
		newDeleteUserCmd(app),
		newServeCmd(app, config, logger),
	)

	return root.Execute()
}

// ensureSchema runs the idempotent schema setup every command needs
func ensureSchema(ctx context.Context, app *wire.App) error {
	return app.Service.Catalog.InitSchema(ctx)
}
