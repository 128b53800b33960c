package response

type ProductResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	// Two-decimal major-unit rendering, e.g. "1.88"
	Price string `json:"price"`
}
