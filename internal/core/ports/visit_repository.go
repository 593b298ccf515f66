package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// ReportCardRepository defines persistence for visit report cards.
// Report cards are write-once; there is no update or delete.
type ReportCardRepository interface {
	Create(ctx context.Context, rc *domain.ReportCard) error
	// ListByPet returns the pet's report history ordered by creation time descending.
	ListByPet(ctx context.Context, petID string) ([]*domain.ReportCard, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.ReportCard, error)
}

// ActivityFeedRepository defines persistence for the append-only activity feed.
type ActivityFeedRepository interface {
	Create(ctx context.Context, item *domain.ActivityFeedItem) error
	// ListByBooking returns feed items ordered by event timestamp descending.
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.ActivityFeedItem, error)
}
