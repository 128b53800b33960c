package wire

import (
	"catalog-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireProduct configures product routes
func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{id}", productHandler.GetProduct)
		r.Patch("/{id}/price", productHandler.SetPrice)
	})
}
