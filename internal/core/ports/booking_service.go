package ports

import (
	"context"
	"time"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking.
// ClientID is taken from the authenticated identity, never from the payload.
type CreateBookingInput struct {
	ClientID            string
	ScheduledDate       time.Time
	AnimalType          string
	Tier                string
	PetName             string
	Address             string
	City                string
	SpecialInstructions string
}

// BookingService defines use-case operations for the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// ListForClient returns the caller's bookings, scheduled date descending.
	// Degrades to an empty list when the store is unavailable.
	ListForClient(ctx context.Context, clientID string) ([]*domain.Booking, error)
	// ListAll returns every booking, scheduled date descending. Admin only at
	// the transport layer. Degrades to an empty list on store failure.
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	// UpdateStatus applies a lifecycle transition. Invalid edges return
	// domain.ErrInvalidTransition and leave the record unchanged.
	UpdateStatus(ctx context.Context, bookingID, target string) (*domain.Booking, error)
}
