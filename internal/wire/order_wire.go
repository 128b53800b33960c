package wire

import (
	"catalog-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireOrder configures order routes
func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderHandler.ListOrders)
		r.Post("/", orderHandler.CreateOrder)
	})
}
