package repository

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	UpdatePrice(ctx context.Context, id int64, priceCents int64) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new product record and fills in the generated id
func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price)
		VALUES ($1, $2)
		RETURNING id
	`

	err := pr.db.QueryRow(ctx, query, product.Name, product.Price).Scan(&product.ID)
	if err != nil {
		if translated := translateConstraint(err); translated != nil {
			return translated
		}
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, price
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	// QueryRow returns at most one row
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

// FindAll retrieves every product ordered by ascending id
func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price
		FROM products
		ORDER BY id ASC
	`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

// UpdatePrice sets the product's price by id. Update-by-filter
// semantics: an unknown id affects zero rows and is not an error. The
// single UPDATE commits on its own, no explicit transaction needed.
func (pr *productRepository) UpdatePrice(ctx context.Context, id int64, priceCents int64) (int64, error) {
	query := `
		UPDATE products
		SET price = $2
		WHERE id = $1
	`

	tag, err := pr.db.Exec(ctx, query, id, priceCents)
	if err != nil {
		if translated := translateConstraint(err); translated != nil {
			return 0, translated
		}
		pr.log.Error("Failed to update product price",
			zap.Error(err),
			zap.Int64("product_id", id),
			zap.Int64("price_cents", priceCents),
		)
		return 0, fmt.Errorf("update price of product %d: %w", id, err)
	}

	rowsAffected := tag.RowsAffected()
	if rowsAffected == 0 {
		pr.log.Warn("Price update matched no product", zap.Int64("product_id", id))
	}

	return rowsAffected, nil
}
