package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

// UserService handles the user directory: listing, lookup, verification and
// role administration. Placement writes and account removal go through the
// placement service so company records stay consistent.
type UserService struct {
	users      repositories.UserStore
	placements *PlacementService
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserStore, placements *PlacementService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, placements: placements, logger: logger}
}

// IsSelfTargeting reports whether an actor is operating on their own account.
// Every handler that forbids self-service (verify, role change, delete) goes
// through this one predicate.
func IsSelfTargeting(actorID, targetID uuid.UUID) bool {
	return actorID == targetID
}

// ListUsers returns every account in the directory.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// GetUser returns a single account. Students may only read their own record;
// coordinators and admins may read anyone's.
func (s *UserService) GetUser(ctx context.Context, actor *models.User, id uuid.UUID) (*models.User, error) {
	if actor.Role == models.RoleStudent && actor.ID != id {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.users.GetByID(ctx, id)
}

// SetVerified flips an account's verification flag. An actor cannot change
// their own flag.
func (s *UserService) SetVerified(ctx context.Context, actorID, targetID uuid.UUID, verified bool) error {
	if IsSelfTargeting(actorID, targetID) {
		return apperrors.ErrSelfAction
	}
	if err := s.users.SetVerified(ctx, targetID, verified); err != nil {
		return err
	}
	s.logger.Info().
		Str("userId", targetID.String()).
		Str("actorId", actorID.String()).
		Bool("verified", verified).
		Msg("Verification flag updated")
	return nil
}

// ChangeRole assigns a new role to an account. An actor cannot change their
// own role, so there is always at least one admin left standing.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role models.Role) error {
	if !models.ValidRole(string(role)) {
		return apperrors.NewValidationError("role must be one of student, coordinator, admin")
	}
	if IsSelfTargeting(actorID, targetID) {
		return apperrors.ErrSelfAction
	}
	if err := s.users.SetRole(ctx, targetID, role); err != nil {
		return err
	}
	s.logger.Info().
		Str("userId", targetID.String()).
		Str("actorId", actorID.String()).
		Str("role", string(role)).
		Msg("Role updated")
	return nil
}

// DeleteUser removes an account, detaching it from any company it was placed
// into. Self-deletion is refused.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if IsSelfTargeting(actorID, targetID) {
		return apperrors.ErrSelfAction
	}
	return s.placements.DeleteUser(ctx, targetID)
}
