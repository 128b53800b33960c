package usecase

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/internal/data/repository"
	"catalog-store/internal/dto/request"
	"catalog-store/internal/dto/response"
	"catalog-store/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUser) (*response.UserResponse, error)
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) CreateUser(ctx context.Context, req *request.CreateUser) (*response.UserResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	return &response.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (us *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	// Convert to response
	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}
	}

	return userResponses, nil
}

// DeleteUser removes the user's orders and the user row as one unit of
// work. An unknown id is a logged no-op, not an error.
func (us *userService) DeleteUser(ctx context.Context, userID int64) error {
	if userID < 1 {
		return fmt.Errorf("invalid user ID")
	}

	ordersDeleted, usersDeleted, err := us.userRepo.DeleteCascade(ctx, userID)
	if err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	if usersDeleted == 0 {
		us.log.Info("Delete matched no user", zap.Int64("user_id", userID))
		return nil
	}

	us.log.Info("User deleted",
		zap.Int64("user_id", userID),
		zap.Int64("orders_deleted", ordersDeleted),
	)
	return nil
}
