package usecase

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/internal/data/repository"

	"go.uber.org/zap"
)

type CatalogService interface {
	InitSchema(ctx context.Context) error
	Seed(ctx context.Context) (bool, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log,
	}
}

// InitSchema idempotently ensures the three tables exist
func (cs *catalogService) InitSchema(ctx context.Context) error {
	return cs.repo.Schema.Init(ctx)
}

// Seed inserts the demo dataset: two users, three products, four
// orders. Returns false without touching the store when user rows
// already exist, a second run would only trip the email uniqueness
// constraint.
func (cs *catalogService) Seed(ctx context.Context) (bool, error) {
	count, err := cs.repo.User.CountAll(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		cs.log.Info("Seed skipped, users already present", zap.Int64("users", count))
		return false, nil
	}

	users := []*entity.User{
		{Name: "Johnny Bravo", Email: "jbravo@email.com"},
		{Name: "James Bond", Email: "jamesb@email.com"},
	}
	for _, u := range users {
		if err := cs.repo.User.Create(ctx, u); err != nil {
			return false, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	// Prices in cents
	products := []*entity.Product{
		{Name: "Orange Juice", Price: 188},
		{Name: "Apple Juice", Price: 177},
		{Name: "Grape Juice", Price: 200},
	}
	for _, p := range products {
		if err := cs.repo.Product.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	orders := []*entity.Order{
		{UserID: users[0].ID, ProductID: products[0].ID, Quantity: 2},
		{UserID: users[0].ID, ProductID: products[1].ID, Quantity: 5},
		{UserID: users[1].ID, ProductID: products[2].ID, Quantity: 1},
		{UserID: users[1].ID, ProductID: products[0].ID, Quantity: 3},
	}
	for _, o := range orders {
		if err := cs.repo.Order.Create(ctx, o); err != nil {
			return false, fmt.Errorf("seed order for user %d: %w", o.UserID, err)
		}
	}

	cs.log.Info("Seed finished",
		zap.Int("users", len(users)),
		zap.Int("products", len(products)),
		zap.Int("orders", len(orders)),
	)

	return true, nil
}
