package response

type OrderLineResponse struct {
	OrderID  int64  `json:"order_id"`
	User     string `json:"user"`
	Product  string `json:"product"`
	Quantity int32  `json:"quantity"`
}

type OrderCountResponse struct {
	UserID int64  `json:"user_id"`
	User   string `json:"user"`
	Orders int64  `json:"orders"`
}
