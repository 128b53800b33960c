package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"catalog-store/internal/data/repository"
	"catalog-store/internal/usecase"
	"catalog-store/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
		Report:  NewReportHandler(service.Order, log),
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrEmailExists):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, "Email already exists")

	case errors.Is(err, repository.ErrMissingReference):
		log.Warn(operation+" failed - missing reference", zap.Error(err))
		utils.ResponseUnprocessable(w, "Referenced user or product does not exist", nil)

	case errors.Is(err, repository.ErrConstraint):
		log.Warn(operation+" failed - constraint violation", zap.Error(err))
		utils.ResponseUnprocessable(w, "Constraint violation", nil)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
