package repository

import (
	"catalog-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Schema  SchemaRepository
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Schema:  NewSchemaRepository(db, log),
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
