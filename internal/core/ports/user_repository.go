package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// UserRepository defines persistence for user identities.
type UserRepository interface {
	// FindByOpenID retrieves a user by external identity.
	FindByOpenID(ctx context.Context, openID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
