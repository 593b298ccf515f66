package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// Provider event kinds the reconciler recognizes.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventPaymentSucceeded  = "payment_intent.succeeded"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

// checkoutProduct is one entry of the fixed service-tier catalog.
type checkoutProduct struct {
	Name        string
	Description string
	PriceCents  int64
	Tier        string
}

// checkoutProducts maps product keys to the fixed catalog. Prices are in
// minor currency units.
var checkoutProducts = map[string]checkoutProduct{
	"basic_dropin": {
		Name:        "PawSitting - Basic Drop-In Visit",
		Description: "Quick 30-minute check-in for your pet. Includes feeding, water, and a quick update.",
		PriceCents:  2500,
		Tier:        "basic",
	},
	"standard_care": {
		Name:        "PawSitting - Standard Care Visit",
		Description: "Full pet sitting visit with walks, feeding, playtime, and photo updates.",
		PriceCents:  5000,
		Tier:        "standard",
	},
	"premium_care": {
		Name:        "PawSitting - Premium Care Visit",
		Description: "Extended care with GPS walk tracking, detailed report card, and AI health insights.",
		PriceCents:  8000,
		Tier:        "premium",
	},
	"farm_ranch": {
		Name:        "PawSitting - Farm & Ranch Care",
		Description: "Complete farm and ranch animal care. Horses, goats, livestock, and exotic animals. Our Blue Ocean specialty.",
		PriceCents:  15000,
		Tier:        "farm_ranch",
	},
	"farm_ranch_premium": {
		Name:        "PawSitting - Farm & Ranch Premium (Full Day)",
		Description: "Full-day farm and ranch management. Multiple species, barn care, pasture checks, and comprehensive reporting.",
		PriceCents:  20000,
		Tier:        "farm_ranch",
	},
}

// PaymentService bridges tier purchases to the payment provider and
// reconciles webhook events against booking payment state.
type PaymentService struct {
	bookings   ports.BookingRepository
	provider   ports.CheckoutProvider
	dedup      ports.EventDeduper
	successURL string
	cancelURL  string
	logger     zerolog.Logger
}

func NewPaymentService(
	bookings ports.BookingRepository,
	provider ports.CheckoutProvider,
	dedup ports.EventDeduper,
	successURL, cancelURL string,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		bookings:   bookings,
		provider:   provider,
		dedup:      dedup,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateCheckout resolves the product key against the fixed catalog and asks
// the provider for a hosted checkout session. Booking state is not touched
// here; it changes only through the webhook path.
func (s *PaymentService) CreateCheckout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	product, ok := checkoutProducts[input.ProductKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, input.ProductKey)
	}

	url, err := s.provider.CreateSession(ctx, ports.CheckoutSessionParams{
		ProductName:   product.Name,
		Description:   product.Description,
		AmountCents:   product.PriceCents,
		CustomerEmail: input.UserEmail,
		ClientRef:     input.UserID,
		Metadata: map[string]string{
			"user_id":       input.UserID,
			"customer_name": input.UserName,
			"product_key":   input.ProductKey,
			"booking_id":    input.BookingID,
		},
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("product_key", input.ProductKey).Msg("checkout session creation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrCollaborator, err)
	}

	s.logger.Info().
		Str("user_id", input.UserID).
		Str("product_key", input.ProductKey).
		Msg("checkout session created")

	return &ports.CheckoutResult{CheckoutURL: url}, nil
}

// HandleEvent reconciles a verified webhook event. Redelivered event ids are
// acknowledged without repeating the mutation; unrecognized kinds and events
// without a booking reference are logged and acknowledged so the provider
// stops redelivering.
func (s *PaymentService) HandleEvent(ctx context.Context, event ports.WebhookEvent) error {
	seen, err := s.dedup.Seen(ctx, event.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("event_id", event.ID).Msg("dedup check failed, processing anyway")
	} else if seen {
		s.logger.Debug().Str("event_id", event.ID).Msg("duplicate webhook event skipped")
		return nil
	}

	// Mark before mutating so a redelivery during the write cannot double-apply.
	if markErr := s.dedup.Mark(ctx, event.ID); markErr != nil {
		s.logger.Warn().Err(markErr).Str("event_id", event.ID).Msg("failed to set dedup key")
	}

	switch event.Type {
	case EventCheckoutCompleted, EventPaymentSucceeded:
		bookingID := event.Metadata["booking_id"]
		if bookingID == "" {
			s.logger.Info().Str("event_id", event.ID).Str("type", event.Type).Msg("payment event without booking reference, acknowledged")
			return nil
		}
		if err := s.bookings.UpdatePayment(ctx, bookingID, domain.PaymentPaid, event.ObjectID); err != nil {
			return fmt.Errorf("reconcile %s: %w", event.Type, err)
		}
		s.logger.Info().
			Str("event_id", event.ID).
			Str("booking_id", bookingID).
			Str("payment_ref", event.ObjectID).
			Msg("booking marked paid")
	case EventPaymentFailed:
		// No "failed" payment status exists; the booking stays unpaid.
		s.logger.Warn().Str("event_id", event.ID).Str("payment_ref", event.ObjectID).Msg("payment failed")
	default:
		s.logger.Info().Str("event_id", event.ID).Str("type", event.Type).Msg("unhandled webhook event type")
	}
	return nil
}
