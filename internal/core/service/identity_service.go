package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// IdentityService maps external login assertions to user records.
type IdentityService struct {
	repo        ports.UserRepository
	ownerOpenID string
	logger      zerolog.Logger
}

func NewIdentityService(repo ports.UserRepository, ownerOpenID string, logger zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, ownerOpenID: ownerOpenID, logger: logger}
}

// Resolve upserts the user for a login assertion. First login creates the
// record (owner allow-list decides the role); later logins update only the
// supplied fields and always refresh last_signed_in. The stored role is never
// downgraded unless the assertion carries an explicit role.
func (s *IdentityService) Resolve(ctx context.Context, a ports.LoginAssertion) (*domain.User, error) {
	if a.OpenID == "" {
		return nil, fmt.Errorf("%w: open_id is required", domain.ErrValidation)
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindByOpenID(ctx, a.OpenID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if existing == nil {
		user := &domain.User{
			ID:           uuid.NewString(),
			OpenID:       a.OpenID,
			Name:         a.Name,
			Email:        a.Email,
			LoginMethod:  a.LoginMethod,
			Role:         roleFor(s.ownerOpenID, a.OpenID, a.Role),
			CreatedAt:    now,
			UpdatedAt:    now,
			LastSignedIn: now,
		}
		created, err := s.repo.Create(ctx, user)
		if err != nil {
			s.logger.Error().Err(err).Str("open_id", a.OpenID).Msg("failed to create user")
			return nil, err
		}
		s.logger.Info().Str("open_id", a.OpenID).Str("role", created.Role).Msg("user created on first login")
		return created, nil
	}

	if a.Name != "" {
		existing.Name = a.Name
	}
	if a.Email != "" {
		existing.Email = a.Email
	}
	if a.LoginMethod != "" {
		existing.LoginMethod = a.LoginMethod
	}
	if a.Role != "" {
		existing.Role = a.Role
	}
	existing.LastSignedIn = now
	existing.UpdatedAt = now

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("open_id", a.OpenID).Msg("failed to refresh user on login")
		return nil, err
	}
	return updated, nil
}

// Me returns the user for an authenticated identity. Missing records and
// store failures degrade to nil so public pages stay functional.
func (s *IdentityService) Me(ctx context.Context, openID string) (*domain.User, error) {
	user, err := s.repo.FindByOpenID(ctx, openID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("open_id", openID).Msg("identity lookup degraded to anonymous")
		}
		return nil, nil
	}
	return user, nil
}

// roleFor is a pure function of the configured owner identifier, the
// candidate identifier, and an explicitly supplied role.
func roleFor(ownerOpenID, openID, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if ownerOpenID != "" && openID == ownerOpenID {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}
