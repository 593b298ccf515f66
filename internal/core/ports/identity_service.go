package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// LoginAssertion carries the external login identity presented to the
// identity resolver. OpenID is the only required field.
type LoginAssertion struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
	// Role, when non-empty, explicitly sets the stored role. Empty means
	// "leave as is" (or apply the owner allow-list on first login). Only
	// trusted server-side callers may set it; the public session endpoint
	// never forwards a role from the request body.
	Role string
}

// IdentityService resolves external login assertions to user records.
type IdentityService interface {
	// Resolve upserts the user for the assertion and refreshes last_signed_in.
	Resolve(ctx context.Context, assertion LoginAssertion) (*domain.User, error)
	// Me returns the user for an authenticated identity, or nil when the
	// record is missing or the store is briefly unavailable.
	Me(ctx context.Context, openID string) (*domain.User, error)
}
