package entity

type Order struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int32 `db:"quantity"`
	Shipped   bool  `db:"shipped"`
}

// OrderLine is an order row joined with its user and product names.
// Join queries return these directly so callers never traverse
// relations at read time.
type OrderLine struct {
	OrderID     int64  `db:"order_id"`
	UserName    string `db:"user_name"`
	ProductName string `db:"product_name"`
	Quantity    int32  `db:"quantity"`
}

// UserOrderCount is one row of the orders-per-user aggregate.
// Users without orders never appear (inner join).
type UserOrderCount struct {
	UserID   int64  `db:"user_id"`
	UserName string `db:"user_name"`
	Orders   int64  `db:"orders"`
}
