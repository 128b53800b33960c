package wire

import (
	"catalog-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Post("/", userHandler.CreateUser)
		r.Delete("/{id}", userHandler.DeleteUser) // cascades to the user's orders
	})
}
