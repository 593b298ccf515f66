package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	Create(ctx context.Context, p *domain.Pet) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
}
