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

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.CreateProduct) (*response.ProductResponse, error)
	ListProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, productID int64) (*response.ProductResponse, error)
	SetPrice(ctx context.Context, req *request.SetPrice) (int64, error)
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log,
	}
}

func (ps *productService) CreateProduct(ctx context.Context, req *request.CreateProduct) (*response.ProductResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		Name:  req.Name,
		Price: req.PriceCents,
	}

	if err := ps.productRepo.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	ps.log.Info("Product created", zap.Int64("product_id", product.ID), zap.String("name", product.Name))

	return toProductResponse(product), nil
}

func (ps *productService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := ps.productRepo.FindAll(ctx)
	if err != nil {
		ps.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	// Convert to response
	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = *toProductResponse(product)
	}

	return productResponses, nil
}

func (ps *productService) GetProduct(ctx context.Context, productID int64) (*response.ProductResponse, error) {
	if productID < 1 {
		return nil, fmt.Errorf("invalid product ID")
	}

	product, err := ps.productRepo.FindByID(ctx, productID)
	if err != nil {
		ps.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", productID))
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	return toProductResponse(product), nil
}

// SetPrice updates the product's price and reports how many rows were
// touched. Zero rows means the product does not exist, which is
// update-by-filter semantics, not an error.
func (ps *productService) SetPrice(ctx context.Context, req *request.SetPrice) (int64, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); errs != nil {
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rowsAffected, err := ps.productRepo.UpdatePrice(ctx, req.ProductID, req.PriceCents)
	if err != nil {
		ps.log.Error("Failed to set price",
			zap.Error(err),
			zap.Int64("product_id", req.ProductID),
			zap.Int64("price_cents", req.PriceCents),
		)
		return 0, fmt.Errorf("set price: %w", err)
	}

	ps.log.Info("Price update finished",
		zap.Int64("product_id", req.ProductID),
		zap.Int64("price_cents", req.PriceCents),
		zap.Int64("rows_affected", rowsAffected),
	)

	return rowsAffected, nil
}

func toProductResponse(product *entity.Product) *response.ProductResponse {
	return &response.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		PriceCents: product.Price,
		Price:      utils.FormatCents(product.Price),
	}
}
