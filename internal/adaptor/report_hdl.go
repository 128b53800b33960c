package adaptor

import (
	"net/http"

	"catalog-store/internal/usecase"
	"catalog-store/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewReportHandler(service usecase.OrderService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// OrdersPerUser handles GET /api/reports/orders-per-user. Users with
// zero orders are excluded.
func (h *ReportHandler) OrdersPerUser(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.OrdersPerUser(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "orders per user report")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", counts)
}
