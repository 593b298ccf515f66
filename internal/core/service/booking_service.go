package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// BookingService owns the booking lifecycle state machine.
type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// Create validates and persists a new booking in state pending/unpaid, owned
// by the calling client. A validation failure lists every missing field.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	var missing []string
	if input.ScheduledDate.IsZero() {
		missing = append(missing, "scheduled_date")
	}
	if input.AnimalType == "" {
		missing = append(missing, "animal_type")
	}
	if input.Tier == "" {
		missing = append(missing, "tier")
	}
	if input.Address == "" {
		missing = append(missing, "address")
	}
	if input.City == "" {
		missing = append(missing, "city")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:                  uuid.NewString(),
		ClientID:            input.ClientID,
		PetName:             input.PetName,
		AnimalType:          input.AnimalType,
		Tier:                input.Tier,
		Status:              domain.BookingPending,
		PaymentStatus:       domain.PaymentUnpaid,
		ScheduledDate:       input.ScheduledDate,
		Address:             input.Address,
		City:                input.City,
		SpecialInstructions: input.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("client_id", booking.ClientID).
		Str("tier", booking.Tier).
		Msg("booking created")

	return booking, nil
}

// ListForClient returns the client's bookings ordered by scheduled date
// descending. A store failure degrades to an empty list so the dashboard
// never hard-fails.
func (s *BookingService) ListForClient(ctx context.Context, clientID string) ([]*domain.Booking, error) {
	items, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("booking listing degraded to empty")
		return []*domain.Booking{}, nil
	}
	return items, nil
}

// ListAll returns every booking ordered by scheduled date descending.
// Degrades to an empty list on store failure.
func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin booking listing degraded to empty")
		return []*domain.Booking{}, nil
	}
	return items, nil
}

// UpdateStatus applies a lifecycle transition. Only edges of the state
// machine are accepted; anything else fails with ErrInvalidTransition and
// leaves the record unchanged. Payment reconciliation is a separate path.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, target string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(target) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}
	next := domain.BookingStatus(target)

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, next); err != nil {
		s.logger.Error().Err(err).Str("booking_id", bookingID).Msg("failed to update booking status")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", bookingID).
		Str("from", string(booking.Status)).
		Str("to", string(next)).
		Msg("booking status updated")

	booking.Status = next
	booking.UpdatedAt = time.Now().UTC()
	return booking, nil
}
