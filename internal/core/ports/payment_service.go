package ports

import "context"

// CheckoutInput carries a client's service-tier purchase request.
type CheckoutInput struct {
	UserID     string
	UserName   string
	UserEmail  string
	ProductKey string
	BookingID  string // optional
}

// CheckoutResult is the hosted checkout redirect returned to the client.
type CheckoutResult struct {
	CheckoutURL string
}

// WebhookEvent is a verified payment-provider event, already parsed from the
// signed body.
type WebhookEvent struct {
	ID        string
	Type      string
	ObjectID  string            // session or payment intent id
	Metadata  map[string]string // includes booking_id when set at checkout
	AmountDue int64
}

// PaymentService bridges service-tier purchases to the external payment
// provider and reconciles its webhook events against booking payment state.
type PaymentService interface {
	CreateCheckout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	// HandleEvent reconciles a verified event. Unrecognized kinds and events
	// without a booking reference are acknowledged without error so the
	// provider stops redelivering.
	HandleEvent(ctx context.Context, event WebhookEvent) error
}
