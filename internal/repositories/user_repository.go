package repositories

import (
	"context"
	"errors"

	"chargeflow/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(ctx context.Context, user *models.User) error

	// CreateWithWallet creates the user and its empty wallet in one
	// transaction.
	CreateWithWallet(ctx context.Context, user *models.User) (*models.Wallet, error)

	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Update saves every field of an existing user
	Update(ctx context.Context, user *models.User) error

	// IncrementTokenVersion invalidates all tokens issued before the call
	IncrementTokenVersion(ctx context.Context, userID uint) error
}
