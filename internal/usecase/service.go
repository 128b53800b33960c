package usecase

import (
	"catalog-store/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	User    UserService
	Product ProductService
	Order   OrderService
	Report  ReportService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, log),
		User:    NewUserService(repo.User, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo.Order, log),
		Report:  NewReportService(repo, log),
	}
}
