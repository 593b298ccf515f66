package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byOpenID  map[string]*domain.User
	findErr   error
	createErr error
	updateErr error
	updated   []*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byOpenID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByOpenID(_ context.Context, openID string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byOpenID[openID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.byOpenID[user.OpenID] = user
	return user, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.byOpenID[user.OpenID] = user
	r.updated = append(r.updated, user)
	return user, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestResolve_EmptyOpenID(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), "owner-oid", zerolog.Nop())

	_, err := svc.Resolve(context.Background(), ports.LoginAssertion{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestResolve_FirstLoginCreatesUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewIdentityService(repo, "owner-oid", zerolog.Nop())

	user, err := svc.Resolve(context.Background(), ports.LoginAssertion{
		OpenID:      "oid_1",
		Name:        "Alice",
		Email:       "alice@example.com",
		LoginMethod: "google",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %q", user.Role)
	}
	if user.LastSignedIn.IsZero() {
		t.Fatalf("last_signed_in not stamped")
	}
	if repo.byOpenID["oid_1"] == nil {
		t.Fatalf("user not persisted")
	}
}

func TestResolve_OwnerPromotedToAdmin(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), "owner-oid", zerolog.Nop())

	user, err := svc.Resolve(context.Background(), ports.LoginAssertion{OpenID: "owner-oid"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected owner to become admin, got %q", user.Role)
	}
}

func TestResolve_UpdateOnlySuppliedFields(t *testing.T) {
	repo := newStubUserRepo()
	repo.byOpenID["oid_1"] = &domain.User{
		ID:     "usr_1",
		OpenID: "oid_1",
		Name:   "Alice",
		Email:  "alice@example.com",
		Role:   domain.RoleAdmin,
	}
	svc := NewIdentityService(repo, "owner-oid", zerolog.Nop())

	before := time.Now().UTC()
	user, err := svc.Resolve(context.Background(), ports.LoginAssertion{
		OpenID: "oid_1",
		Name:   "Alice B",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Name != "Alice B" {
		t.Fatalf("name not updated")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email should be untouched, got %q", user.Email)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role must not be downgraded on re-login, got %q", user.Role)
	}
	if user.LastSignedIn.Before(before) {
		t.Fatalf("last_signed_in not refreshed")
	}
}

func TestResolve_ExplicitRoleWins(t *testing.T) {
	repo := newStubUserRepo()
	repo.byOpenID["oid_1"] = &domain.User{ID: "usr_1", OpenID: "oid_1", Role: domain.RoleAdmin}
	svc := NewIdentityService(repo, "owner-oid", zerolog.Nop())

	user, err := svc.Resolve(context.Background(), ports.LoginAssertion{OpenID: "oid_1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("explicit role should be applied, got %q", user.Role)
	}
}

func TestResolve_StoreFailurePropagates(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = domain.ErrStoreUnavailable
	svc := NewIdentityService(repo, "owner-oid", zerolog.Nop())

	_, err := svc.Resolve(context.Background(), ports.LoginAssertion{OpenID: "oid_1"})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestMe_MissingUserDegradesToNil(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), "owner-oid", zerolog.Nop())

	user, err := svc.Me(context.Background(), "oid_unknown")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestMe_StoreFailureDegradesToNil(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = domain.ErrStoreUnavailable
	svc := NewIdentityService(repo, "owner-oid", zerolog.Nop())

	user, err := svc.Me(context.Background(), "oid_1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user on store failure")
	}
}
