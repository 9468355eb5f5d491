package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/pkg/apperrors"
	"github.com/devang/placeport/internal/pkg/dberrors"
)

const userColumns = `id, email, password, name, roll_no, role, is_verified, batch,
	tenth_cgpa, tenth_percentage, twelfth_cgpa, twelfth_percentage,
	ug_cgpa, ug_percentage, pg_cgpa, pg_percentage, backlogs, gap_years,
	placed, placed_company_id, placed_company_name, placed_ctc, placed_ctc_base,
	placed_profile, placed_profile_type, placed_offer_type, placed_location, placed_bond,
	created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{db: tx}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.RollNo, &u.Role, &u.IsVerified, &u.Batch,
		&u.Tenth.CGPA, &u.Tenth.Percentage, &u.Twelfth.CGPA, &u.Twelfth.Percentage,
		&u.UG.CGPA, &u.UG.Percentage, &u.PG.CGPA, &u.PG.Percentage, &u.Backlogs, &u.GapYears,
		&u.Placed, &u.PlacedAt.CompanyID, &u.PlacedAt.CompanyName, &u.PlacedAt.CTC, &u.PlacedAt.CTCBase,
		&u.PlacedAt.Profile, &u.PlacedAt.ProfileType, &u.PlacedAt.OfferType, &u.PlacedAt.Location, &u.PlacedAt.Bond,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. Duplicate email/roll number unique violations are
// mapped to their sentinel errors.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password, name, roll_no, role, is_verified, batch,
			tenth_cgpa, tenth_percentage, twelfth_cgpa, twelfth_percentage,
			ug_cgpa, ug_percentage, pg_cgpa, pg_percentage, backlogs, gap_years,
			placed, placed_company_id, placed_company_name, placed_ctc, placed_ctc_base,
			placed_profile, placed_profile_type, placed_offer_type, placed_location, placed_bond)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`,
		u.ID, u.Email, u.Password, u.Name, u.RollNo, u.Role, u.IsVerified, u.Batch,
		u.Tenth.CGPA, u.Tenth.Percentage, u.Twelfth.CGPA, u.Twelfth.Percentage,
		u.UG.CGPA, u.UG.Percentage, u.PG.CGPA, u.PG.Percentage, u.Backlogs, u.GapYears,
		u.Placed, u.PlacedAt.CompanyID, u.PlacedAt.CompanyName, u.PlacedAt.CTC, u.PlacedAt.CTCBase,
		u.PlacedAt.Profile, u.PlacedAt.ProfileType, u.PlacedAt.OfferType, u.PlacedAt.Location, u.PlacedAt.Bond,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_roll_no_key") {
			return apperrors.ErrRollNoAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return u, nil
}

// List retrieves all users ordered by roll number.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY roll_no`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// RollNoExists checks if a roll number is already registered
func (r *UserRepository) RollNoExists(ctx context.Context, rollNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE roll_no = $1)`, rollNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll number: %w", err)
	}
	return exists, nil
}

// SetVerified sets the verification flag
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_verified = $1, updated_at = now() WHERE id = $2`,
		verified, id)
	if err != nil {
		return fmt.Errorf("error updating verification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetRole changes the account role
func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = now() WHERE id = $2`,
		role, id)
	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET password = $1, updated_at = now() WHERE id = $2`,
		hash, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePlacement writes the whole placement sub-record. Only the placement
// service may call this; nothing else writes placed/placed_* columns.
func (r *UserRepository) UpdatePlacement(ctx context.Context, id uuid.UUID, placed bool, p models.Placement) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET placed = $1,
			placed_company_id = $2, placed_company_name = $3,
			placed_ctc = $4, placed_ctc_base = $5,
			placed_profile = $6, placed_profile_type = $7, placed_offer_type = $8,
			placed_location = $9, placed_bond = $10,
			updated_at = now()
		WHERE id = $11`,
		placed, p.CompanyID, p.CompanyName, p.CTC, p.CTCBase,
		p.Profile, p.ProfileType, p.OfferType, p.Location, p.Bond, id)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePlacementLocation updates only the location of the placement record.
// A missing user and an unplaced one are distinct failures.
func (r *UserRepository) UpdatePlacementLocation(ctx context.Context, id uuid.UUID, location string) error {
	var placed bool
	if err := r.db.QueryRow(ctx, `SELECT placed FROM users WHERE id = $1`, id).Scan(&placed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error reading placement state: %w", err)
	}
	if !placed {
		return apperrors.ErrUserNotPlaced
	}

	_, err := r.db.Exec(ctx, `
		UPDATE users SET placed_location = $1, updated_at = now()
		WHERE id = $2`,
		location, id)
	if err != nil {
		return fmt.Errorf("error updating placement location: %w", err)
	}
	return nil
}

// ResetPlacementsByCompany reverts every user placed at the given company to
// the not-placed sentinel and returns the number of users reverted.
func (r *UserRepository) ResetPlacementsByCompany(ctx context.Context, companyID string) (int64, error) {
	np := models.NotPlaced()
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET placed = FALSE,
			placed_company_id = $1, placed_company_name = '',
			placed_ctc = 0, placed_ctc_base = 0,
			placed_profile = '', placed_profile_type = '', placed_offer_type = '',
			placed_location = $2, placed_bond = 0,
			updated_at = now()
		WHERE placed_company_id = $3`,
		np.CompanyID, np.Location, companyID)
	if err != nil {
		return 0, fmt.Errorf("error resetting placements: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a user record
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
