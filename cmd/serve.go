package cmd

import (
	"fmt"
	"net/http"

	"catalog-store/internal/wire"
	"catalog-store/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *wire.App, config *utils.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureSchema(ctx, app); err != nil {
				return err
			}

			addr := fmt.Sprintf(":%s", config.App.Port)
			logger.Info("Starting HTTP server", zap.String("addr", addr))

			if err := http.ListenAndServe(addr, app.Router); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
