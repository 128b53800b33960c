package wire

import (
	"catalog-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReport configures report routes
func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Get("/api/reports/orders-per-user", reportHandler.OrdersPerUser)
}
