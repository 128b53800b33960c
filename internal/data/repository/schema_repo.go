package repository

import (
	"context"
	"fmt"

	"catalog-store/pkg/database"

	"go.uber.org/zap"
)

type SchemaRepository interface {
	Init(ctx context.Context) error
}

type schemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSchemaRepository(db database.PgxIface, log *zap.Logger) SchemaRepository {
	return &schemaRepository{
		db:  db,
		log: log,
	}
}

// Statements are idempotent so Init is safe to run on every boot.
// Orders must come last, its foreign keys reference the other two.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		price BIGINT NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id),
		product_id BIGINT NOT NULL REFERENCES products (id),
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		shipped BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Init ensures the three tables and their constraints exist
func (sr *schemaRepository) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := sr.db.Exec(ctx, stmt); err != nil {
			sr.log.Error("Failed to initialize schema", zap.Error(err))
			return fmt.Errorf("init schema: %w", err)
		}
	}

	sr.log.Debug("Schema initialized")
	return nil
}
