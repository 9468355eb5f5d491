package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

const companyColumns = `id, name, status, offer_type, profile, profile_type, ctc, ctc_base, bond,
	tenth_cutoff_cgpa, tenth_cutoff_percentage, twelfth_cutoff_cgpa, twelfth_cutoff_percentage,
	ug_cutoff_cgpa, ug_cutoff_percentage, pg_cutoff_cgpa, pg_cutoff_percentage,
	locations, date_of_offer, selected_students_roll_no, created_at, updated_at`

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db Querier
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db Querier) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *CompanyRepository) WithTx(tx pgx.Tx) *CompanyRepository {
	return &CompanyRepository{db: tx}
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Status, &c.OfferType, &c.Profile, &c.ProfileType, &c.CTC, &c.CTCBase, &c.Bond,
		&c.TenthCutoff.CGPA, &c.TenthCutoff.Percentage, &c.TwelfthCutoff.CGPA, &c.TwelfthCutoff.Percentage,
		&c.UGCutoff.CGPA, &c.UGCutoff.Percentage, &c.PGCutoff.CGPA, &c.PGCutoff.Percentage,
		&c.Locations, &c.DateOfOffer, &c.SelectedStudentsRollNo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO companies (id, name, status, offer_type, profile, profile_type, ctc, ctc_base, bond,
			tenth_cutoff_cgpa, tenth_cutoff_percentage, twelfth_cutoff_cgpa, twelfth_cutoff_percentage,
			ug_cutoff_cgpa, ug_cutoff_percentage, pg_cutoff_cgpa, pg_cutoff_percentage,
			locations, date_of_offer, selected_students_roll_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		c.ID, c.Name, c.Status, c.OfferType, c.Profile, c.ProfileType, c.CTC, c.CTCBase, c.Bond,
		c.TenthCutoff.CGPA, c.TenthCutoff.Percentage, c.TwelfthCutoff.CGPA, c.TwelfthCutoff.Percentage,
		c.UGCutoff.CGPA, c.UGCutoff.Percentage, c.PGCutoff.CGPA, c.PGCutoff.Percentage,
		c.Locations, c.DateOfOffer, c.SelectedStudentsRollNo,
	)
	if err != nil {
		return fmt.Errorf("error creating company: %w", err)
	}
	return nil
}

// GetByID retrieves a company by id
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return c, nil
}

// List retrieves all companies, most recent offers first.
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY date_of_offer DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Update rewrites company attributes. The selected-students list is owned by
// the placement service and is never written here.
func (r *CompanyRepository) Update(ctx context.Context, c *models.Company) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE companies SET name = $1, status = $2, offer_type = $3, profile = $4,
			profile_type = $5, ctc = $6, ctc_base = $7, bond = $8,
			tenth_cutoff_cgpa = $9, tenth_cutoff_percentage = $10,
			twelfth_cutoff_cgpa = $11, twelfth_cutoff_percentage = $12,
			ug_cutoff_cgpa = $13, ug_cutoff_percentage = $14,
			pg_cutoff_cgpa = $15, pg_cutoff_percentage = $16,
			locations = $17, date_of_offer = $18, updated_at = now()
		WHERE id = $19`,
		c.Name, c.Status, c.OfferType, c.Profile, c.ProfileType, c.CTC, c.CTCBase, c.Bond,
		c.TenthCutoff.CGPA, c.TenthCutoff.Percentage, c.TwelfthCutoff.CGPA, c.TwelfthCutoff.Percentage,
		c.UGCutoff.CGPA, c.UGCutoff.Percentage, c.PGCutoff.CGPA, c.PGCutoff.Percentage,
		c.Locations, c.DateOfOffer, c.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company record
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// AddSelectedRollNo appends a roll number to the company's selection list if
// it is not already present, so repeated assignment stays idempotent.
func (r *CompanyRepository) AddSelectedRollNo(ctx context.Context, id uuid.UUID, rollNo string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE companies
		SET selected_students_roll_no = array_append(selected_students_roll_no, $1),
			updated_at = now()
		WHERE id = $2 AND NOT ($1 = ANY(selected_students_roll_no))`,
		rollNo, id)
	if err != nil {
		return fmt.Errorf("error adding selected roll number: %w", err)
	}
	return nil
}

// RemoveSelectedRollNo drops a roll number from the company's selection list.
func (r *CompanyRepository) RemoveSelectedRollNo(ctx context.Context, id uuid.UUID, rollNo string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE companies
		SET selected_students_roll_no = array_remove(selected_students_roll_no, $1),
			updated_at = now()
		WHERE id = $2`,
		rollNo, id)
	if err != nil {
		return fmt.Errorf("error removing selected roll number: %w", err)
	}
	return nil
}
