package usecase

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/internal/data/repository"
	"catalog-store/internal/dto/request"
	"catalog-store/internal/dto/response"
	"catalog-store/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrder) (*response.OrderLineResponse, error)
	ListOrders(ctx context.Context) ([]response.OrderLineResponse, error)
	OrdersPerUser(ctx context.Context) ([]response.OrderCountResponse, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log,
	}
}

func (os *orderService) CreateOrder(ctx context.Context, req *request.CreateOrder) (*response.OrderLineResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order := &entity.Order{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Shipped:   req.Shipped,
	}

	// Foreign keys are the authority on whether user and product exist
	if err := os.orderRepo.Create(ctx, order); err != nil {
		os.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Int64("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	os.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
		zap.Int64("product_id", order.ProductID),
	)

	return &response.OrderLineResponse{
		OrderID:  order.ID,
		Quantity: order.Quantity,
	}, nil
}

func (os *orderService) ListOrders(ctx context.Context) ([]response.OrderLineResponse, error) {
	lines, err := os.orderRepo.FindAllLines(ctx)
	if err != nil {
		os.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	// Convert to response
	lineResponses := make([]response.OrderLineResponse, len(lines))
	for i, line := range lines {
		lineResponses[i] = response.OrderLineResponse{
			OrderID:  line.OrderID,
			User:     line.UserName,
			Product:  line.ProductName,
			Quantity: line.Quantity,
		}
	}

	return lineResponses, nil
}

func (os *orderService) OrdersPerUser(ctx context.Context) ([]response.OrderCountResponse, error) {
	counts, err := os.orderRepo.CountPerUser(ctx)
	if err != nil {
		os.log.Error("Failed to count orders per user", zap.Error(err))
		return nil, fmt.Errorf("orders per user: %w", err)
	}

	// Convert to response
	countResponses := make([]response.OrderCountResponse, len(counts))
	for i, count := range counts {
		countResponses[i] = response.OrderCountResponse{
			UserID: count.UserID,
			User:   count.UserName,
			Orders: count.Orders,
		}
	}

	return countResponses, nil
}
