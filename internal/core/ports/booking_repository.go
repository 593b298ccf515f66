package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// ListByClient returns the client's bookings ordered by scheduled date descending.
	ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error)
	// ListAll returns every booking ordered by scheduled date descending.
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	// UpdatePayment sets the payment status and the external payment reference.
	UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, paymentRef string) error
}
