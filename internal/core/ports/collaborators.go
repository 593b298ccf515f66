package ports

import "context"

// ChatPrompt is one message of a text-generation request.
type ChatPrompt struct {
	Role    string `json:"role"` // "system" or "user"
	Content string `json:"content"`
}

// ChatCompleter abstracts the external text-generation collaborator.
// Implementations must bound the call with a timeout; callers treat any error
// as "collaborator unavailable" and apply their own fallback.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatPrompt) (string, error)
}

// CheckoutSessionParams describes a hosted checkout session to create.
type CheckoutSessionParams struct {
	ProductName   string
	Description   string
	AmountCents   int64
	CustomerEmail string
	ClientRef     string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// CheckoutProvider abstracts the external payment provider's session API.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params CheckoutSessionParams) (url string, err error)
}

// EventDeduper records processed webhook event ids so provider redeliveries
// are acknowledged without repeating state mutations.
type EventDeduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}
