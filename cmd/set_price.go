package cmd

import (
	"fmt"
	"strconv"

	"catalog-store/internal/dto/request"
	"catalog-store/internal/wire"
	"catalog-store/pkg/utils"

	"github.com/spf13/cobra"
)

func newSetPriceCmd(app *wire.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-price <product-id> <price-cents>",
		Short: "Set a product's price in minor currency units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("product-id must be an integer: %q", args[0])
			}
			priceCents, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("price-cents must be an integer: %q", args[1])
			}

			ctx := cmd.Context()
			if err := ensureSchema(ctx, app); err != nil {
				return err
			}

			req := &request.SetPrice{
				ProductID:  productID,
				PriceCents: priceCents,
			}

			rowsAffected, err := app.Service.Product.SetPrice(ctx, req)
			if err != nil {
				return err
			}

			if rowsAffected == 0 {
				fmt.Printf("no product with id %d, nothing updated\n", productID)
				return nil
			}

			fmt.Printf("product %d price set to %s\n", productID, utils.FormatCents(priceCents))
			return nil
		},
	}
}
