package directory

import (
	"context"

	"roombook/internal/domain"
)

// UserRepository defines the storage operations the directory needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}
