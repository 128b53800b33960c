package usecase

import (
	"context"
	"testing"

	"catalog-store/internal/data/repository"
	"catalog-store/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_CreateUser(t *testing.T) {
	users := &fakeUserRepo{}
	service := NewUserService(users, zap.NewNop())

	created, err := service.CreateUser(context.Background(), &request.CreateUser{
		Name:  "Johnny Bravo",
		Email: "jbravo@email.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Johnny Bravo", created.Name)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{createErr: repository.ErrEmailExists}
	service := NewUserService(users, zap.NewNop())

	_, err := service.CreateUser(context.Background(), &request.CreateUser{
		Name:  "Johnny Clone",
		Email: "jbravo@email.com",
	})
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestUserService_CreateUser_RejectsBadEmail(t *testing.T) {
	users := &fakeUserRepo{}
	service := NewUserService(users, zap.NewNop())

	_, err := service.CreateUser(context.Background(), &request.CreateUser{
		Name:  "Johnny Bravo",
		Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, users.users)
}

func TestUserService_DeleteUser(t *testing.T) {
	users := &fakeUserRepo{ordersDeleted: 2, usersDeleted: 1}
	service := NewUserService(users, zap.NewNop())

	require.NoError(t, service.DeleteUser(context.Background(), 2))
	assert.Equal(t, int64(2), users.deletedID)
}

func TestUserService_DeleteUser_MissingIsNoop(t *testing.T) {
	users := &fakeUserRepo{ordersDeleted: 0, usersDeleted: 0}
	service := NewUserService(users, zap.NewNop())

	require.NoError(t, service.DeleteUser(context.Background(), 99))
}

func TestUserService_DeleteUser_InvalidID(t *testing.T) {
	service := NewUserService(&fakeUserRepo{}, zap.NewNop())

	err := service.DeleteUser(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}
