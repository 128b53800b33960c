package repository

import (
	"context"
	"fmt"

	"catalog-store/internal/data/entity"
	"catalog-store/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	DeleteCascade(ctx context.Context, id int64) (ordersDeleted, usersDeleted int64, err error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new user record and fills in the generated id
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query, user.Name, user.Email).Scan(&user.ID)
	if err != nil {
		if translated := translateConstraint(err); translated != nil {
			return translated
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

// FindAll retrieves every user ordered by ascending id
func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		ORDER BY id ASC
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

// DeleteCascade removes the user's orders and then the user row inside
// one transaction. Orders must go first, they hold a foreign key to the
// user. A missing user is not an error: both deletes affect zero rows.
func (ur *userRepository) DeleteCascade(ctx context.Context, id int64) (int64, int64, error) {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin transaction", zap.Error(err))
		return 0, 0, fmt.Errorf("begin delete user %d: %w", id, err)
	}

	ordersTag, err := tx.Exec(ctx, `DELETE FROM orders WHERE user_id = $1`, id)
	if err != nil {
		tx.Rollback(ctx)
		ur.log.Error("Failed to delete user orders",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return 0, 0, fmt.Errorf("delete orders of user %d: %w", id, err)
	}

	usersTag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		tx.Rollback(ctx)
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return 0, 0, fmt.Errorf("delete user %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		ur.log.Error("Failed to commit user delete", zap.Error(err))
		return 0, 0, fmt.Errorf("commit delete user %d: %w", id, err)
	}

	ordersDeleted := ordersTag.RowsAffected()
	usersDeleted := usersTag.RowsAffected()

	ur.log.Info("User delete finished",
		zap.Int64("user_id", id),
		zap.Int64("orders_deleted", ordersDeleted),
		zap.Int64("users_deleted", usersDeleted),
	)

	return ordersDeleted, usersDeleted, nil
}
