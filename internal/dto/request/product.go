package request

type CreateProduct struct {
	Name string `json:"name" validate:"required"`
	// Price in minor currency units
	PriceCents int64 `json:"price_cents" validate:"min=0"`
}

type SetPrice struct {
	ProductID  int64 `json:"product_id" validate:"required,min=1"`
	PriceCents int64 `json:"price_cents" validate:"min=0"`
}
