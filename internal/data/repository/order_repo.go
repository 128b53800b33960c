package repository

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/pkg/database"

	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAllLines(ctx context.Context) ([]*entity.OrderLine, error)
	CountPerUser(ctx context.Context) ([]*entity.UserOrderCount, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new order record and fills in the generated id.
// The store rejects orders whose user or product does not exist.
func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, product_id, quantity, shipped)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := or.db.QueryRow(ctx, query,
		order.UserID,
		order.ProductID,
		order.Quantity,
		order.Shipped,
	).Scan(&order.ID)

	if err != nil {
		if translated := translateConstraint(err); translated != nil {
			return translated
		}
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
			zap.Int64("product_id", order.ProductID),
		)
		return fmt.Errorf("create order for user %d: %w", order.UserID, err)
	}

	return nil
}

// FindAllLines retrieves every order joined with its user and product
// names, ordered by ascending order id
func (or *orderRepository) FindAllLines(ctx context.Context) ([]*entity.OrderLine, error) {
	query := `
		SELECT o.id, u.name, p.name, o.quantity
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN products p ON p.id = o.product_id
		ORDER BY o.id ASC
	`

	rows, err := or.db.Query(ctx, query)
	if err != nil {
		or.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("find all order lines: %w", err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	for rows.Next() {
		var line entity.OrderLine
		err := rows.Scan(
			&line.OrderID,
			&line.UserName,
			&line.ProductName,
			&line.Quantity,
		)
		if err != nil {
			or.log.Error("Failed to scan order line", zap.Error(err))
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return lines, nil
}

// CountPerUser counts orders per user, ordered by ascending user id.
// Inner join, so users without orders are excluded.
func (or *orderRepository) CountPerUser(ctx context.Context) ([]*entity.UserOrderCount, error) {
	query := `
		SELECT u.id, u.name, COUNT(o.id)
		FROM users u
		JOIN orders o ON o.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.id ASC
	`

	rows, err := or.db.Query(ctx, query)
	if err != nil {
		or.log.Error("Failed to count orders per user", zap.Error(err))
		return nil, fmt.Errorf("count orders per user: %w", err)
	}
	defer rows.Close()

	var counts []*entity.UserOrderCount
	for rows.Next() {
		var count entity.UserOrderCount
		err := rows.Scan(
			&count.UserID,
			&count.UserName,
			&count.Orders,
		)
		if err != nil {
			or.log.Error("Failed to scan order count row", zap.Error(err))
			return nil, fmt.Errorf("scan order count row: %w", err)
		}
		counts = append(counts, &count)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order counts: %w", err)
	}

	return counts, nil
}
