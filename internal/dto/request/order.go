package request

type CreateOrder struct {
	UserID    int64 `json:"user_id" validate:"required,min=1"`
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int32 `json:"quantity" validate:"required,min=1"`
	Shipped   bool  `json:"shipped"`
}
