package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

// PlacementService mediates every mutation of the User<->Company placement
// pair. The two collections are not linked by foreign keys; the contract that
// a placed user's roll number appears in exactly that company's selection
// list, and nowhere else, lives here. No other component writes placedAt or
// selectedStudentsRollNo.
//
// Every operation runs inside one transaction, so a crash mid-sequence never
// leaves the pair disagreeing.
type PlacementService struct {
	txr    repositories.PlacementTxRunner
	logger zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(txr repositories.PlacementTxRunner, logger zerolog.Logger) *PlacementService {
	return &PlacementService{txr: txr, logger: logger}
}

// AssignPlacement places a user at a company, moving them off any prior
// company first. companyID may be the "np" sentinel to unplace. Reassigning to
// the company the user is already placed at is idempotent: the roll number
// appears in the selection list exactly once and no detach/attach churn
// happens.
//
// The placedAt record is a snapshot of the company's terms at assignment
// time; location starts at "N/A" and is set separately via AssignLocation.
func (s *PlacementService) AssignPlacement(ctx context.Context, userID uuid.UUID, companyID string) error {
	return s.txr.WithinTx(ctx, func(ctx context.Context, st repositories.PlacementStores) error {
		user, err := st.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		// Detach from the prior company, unless this is a reassignment to
		// the same company.
		if user.Placed && user.PlacedAt.CompanyID != models.NotPlacedCompanyID &&
			user.PlacedAt.CompanyID != companyID {
			priorID, err := uuid.Parse(user.PlacedAt.CompanyID)
			if err != nil {
				return fmt.Errorf("stored placement references malformed company id %q: %w",
					user.PlacedAt.CompanyID, err)
			}
			if err := st.Companies.RemoveSelectedRollNo(ctx, priorID, user.RollNo); err != nil {
				return err
			}
		}

		if companyID == models.NotPlacedCompanyID {
			return st.Users.UpdatePlacement(ctx, userID, false, models.NotPlaced())
		}

		targetID, err := uuid.Parse(companyID)
		if err != nil {
			return apperrors.ErrInvalidID
		}
		company, err := st.Companies.GetByID(ctx, targetID)
		if err != nil {
			return err
		}

		placement := models.Placement{
			CompanyID:   company.ID.String(),
			CompanyName: company.Name,
			CTC:         company.CTC,
			CTCBase:     company.CTCBase,
			Profile:     company.Profile,
			ProfileType: string(company.ProfileType),
			OfferType:   string(company.OfferType),
			Location:    "N/A",
			Bond:        company.Bond,
		}
		// Same-company reassignment keeps the already-assigned location.
		if user.Placed && user.PlacedAt.CompanyID == companyID {
			placement.Location = user.PlacedAt.Location
		}

		if err := st.Companies.AddSelectedRollNo(ctx, targetID, user.RollNo); err != nil {
			return err
		}
		if err := st.Users.UpdatePlacement(ctx, userID, true, placement); err != nil {
			return err
		}

		s.logger.Info().
			Str("userId", userID.String()).
			Str("rollNo", user.RollNo).
			Str("companyId", companyID).
			Str("companyName", company.Name).
			Msg("Placement assigned")
		return nil
	})
}

// AssignLocation sets the work location of an already-placed user. Location
// is user-local state, the company side is untouched.
func (s *PlacementService) AssignLocation(ctx context.Context, userID uuid.UUID, location string) error {
	return s.txr.WithinTx(ctx, func(ctx context.Context, st repositories.PlacementStores) error {
		return st.Users.UpdatePlacementLocation(ctx, userID, location)
	})
}

// CascadeDeleteCompany deletes a company and reverts every user placed there
// to the not-placed sentinel, atomically. If the delete or the reversion
// fails, neither is visible; the caller may resubmit, nothing is retried
// here.
func (s *PlacementService) CascadeDeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	return s.txr.WithinTx(ctx, func(ctx context.Context, st repositories.PlacementStores) error {
		if err := st.Companies.Delete(ctx, companyID); err != nil {
			return err
		}
		reverted, err := st.Users.ResetPlacementsByCompany(ctx, companyID.String())
		if err != nil {
			return err
		}
		s.logger.Info().
			Str("companyId", companyID.String()).
			Int64("usersReverted", reverted).
			Msg("Company deleted, placements reverted")
		return nil
	})
}

// DeleteUser removes a user and, if they were placed, drops their roll number
// from the company's selection list in the same transaction. Without the
// detach, deleting a placed user would strand their roll number on the
// company side.
func (s *PlacementService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.txr.WithinTx(ctx, func(ctx context.Context, st repositories.PlacementStores) error {
		user, err := st.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Placed && user.PlacedAt.CompanyID != models.NotPlacedCompanyID {
			companyID, err := uuid.Parse(user.PlacedAt.CompanyID)
			if err != nil {
				return fmt.Errorf("stored placement references malformed company id %q: %w",
					user.PlacedAt.CompanyID, err)
			}
			if err := st.Companies.RemoveSelectedRollNo(ctx, companyID, user.RollNo); err != nil {
				return err
			}
		}
		return st.Users.Delete(ctx, userID)
	})
}
