package usecase

import (
	"context"
	"testing"

	"catalog-store/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService_Seed(t *testing.T) {
	repo, _, users, products, orders := newFakeRepository()
	service := NewCatalogService(repo, zap.NewNop())

	seeded, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, seeded)

	require.Len(t, users.users, 2)
	require.Len(t, products.products, 3)
	require.Len(t, orders.orders, 4)

	assert.Equal(t, "jbravo@email.com", users.users[0].Email)
	assert.Equal(t, int64(188), products.products[0].Price)

	// Orders reference the generated ids
	assert.Equal(t, int64(1), orders.orders[0].UserID)
	assert.Equal(t, int64(1), orders.orders[0].ProductID)
	assert.Equal(t, int32(2), orders.orders[0].Quantity)
	assert.Equal(t, int64(2), orders.orders[3].UserID)
	assert.Equal(t, int64(1), orders.orders[3].ProductID)
	assert.Equal(t, int32(3), orders.orders[3].Quantity)
}

func TestCatalogService_Seed_AlreadySeeded(t *testing.T) {
	repo, _, users, products, orders := newFakeRepository()
	users.users = []*entity.User{{ID: 1, Name: "Johnny Bravo", Email: "jbravo@email.com"}}
	users.nextID = 1

	service := NewCatalogService(repo, zap.NewNop())

	seeded, err := service.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, seeded)

	// Nothing new inserted
	assert.Len(t, users.users, 1)
	assert.Empty(t, products.products)
	assert.Empty(t, orders.orders)
}

func TestCatalogService_InitSchema(t *testing.T) {
	repo, schema, _, _, _ := newFakeRepository()
	service := NewCatalogService(repo, zap.NewNop())

	require.NoError(t, service.InitSchema(context.Background()))
	assert.Equal(t, 1, schema.initCalls)
}
