package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-store/internal/data/repository"
	"catalog-store/internal/dto/request"
	"catalog-store/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stub services returning canned results

type stubProductService struct {
	setPriceRows int64
	setPriceErr  error
	lastReq      *request.SetPrice
}

func (s *stubProductService) CreateProduct(ctx context.Context, req *request.CreateProduct) (*response.ProductResponse, error) {
	return &response.ProductResponse{ID: 1, Name: req.Name, PriceCents: req.PriceCents}, nil
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	return []response.ProductResponse{{ID: 1, Name: "Orange Juice", PriceCents: 188, Price: "1.88"}}, nil
}

func (s *stubProductService) GetProduct(ctx context.Context, productID int64) (*response.ProductResponse, error) {
	if productID != 1 {
		return nil, fmt.Errorf("product not found")
	}
	return &response.ProductResponse{ID: 1, Name: "Orange Juice", PriceCents: 188, Price: "1.88"}, nil
}

func (s *stubProductService) SetPrice(ctx context.Context, req *request.SetPrice) (int64, error) {
	s.lastReq = req
	return s.setPriceRows, s.setPriceErr
}

type stubUserService struct {
	createErr error
	deleteErr error
}

func (s *stubUserService) CreateUser(ctx context.Context, req *request.CreateUser) (*response.UserResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &response.UserResponse{ID: 1, Name: req.Name, Email: req.Email}, nil
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	return nil, nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.deleteErr
}

func TestProductHandler_SetPrice(t *testing.T) {
	stub := &stubProductService{setPriceRows: 1}
	handler := NewProductHandler(stub, zap.NewNop())

	r := chi.NewRouter()
	r.Patch("/api/products/{id}/price", handler.SetPrice)

	req := httptest.NewRequest(http.MethodPatch, "/api/products/1/price",
		strings.NewReader(`{"price_cents":249}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastReq)
	assert.Equal(t, int64(1), stub.lastReq.ProductID)
	assert.Equal(t, int64(249), stub.lastReq.PriceCents)
}

func TestProductHandler_SetPrice_BadID(t *testing.T) {
	handler := NewProductHandler(&stubProductService{}, zap.NewNop())

	r := chi.NewRouter()
	r.Patch("/api/products/{id}/price", handler.SetPrice)

	req := httptest.NewRequest(http.MethodPatch, "/api/products/abc/price",
		strings.NewReader(`{"price_cents":249}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	handler := NewProductHandler(&stubProductService{}, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/products/{id}", handler.GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	stub := &stubUserService{createErr: fmt.Errorf("create user: %w", repository.ErrEmailExists)}
	handler := NewUserHandler(stub, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/users", handler.CreateUser)

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"name":"Johnny Clone","email":"jbravo@email.com"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserHandler_DeleteUser_MissingIsStillOK(t *testing.T) {
	// Deleting an unknown user is a zero-row no-op, not an error
	handler := NewUserHandler(&stubUserService{}, zap.NewNop())

	r := chi.NewRouter()
	r.Delete("/api/users/{id}", handler.DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/99", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
