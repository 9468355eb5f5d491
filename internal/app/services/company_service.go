package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/pkg/apperrors"
	"github.com/devang/placeport/internal/pkg/validation"
)

// CompanyService handles the company registry. The selected-students list is
// off limits here; only the placement service touches it.
type CompanyService struct {
	companies  repositories.CompanyStore
	placements *PlacementService
	logger     zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companies repositories.CompanyStore, placements *PlacementService, logger zerolog.Logger) *CompanyService {
	return &CompanyService{companies: companies, placements: placements, logger: logger}
}

func validateCompanyRequest(req *dto.CompanyRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !models.ValidCompanyStatus(req.Status) {
		errs = append(errs, "status must be one of ongoing, upcoming, completed, cancelled")
	}
	if !models.ValidOfferType(req.OfferType) {
		errs = append(errs, "offerType must be one of PPO, FTE, 6M+FTE, Intern")
	}
	if !models.ValidProfileType(req.ProfileType) {
		errs = append(errs, "profileType must be one of Software, Analyst, Others")
	}
	if req.CTC < 0 || req.CTCBase < 0 {
		errs = append(errs, "ctc and ctcBase cannot be negative")
	}
	if req.CTCBase > req.CTC {
		errs = append(errs, "ctcBase cannot exceed ctc")
	}
	if req.Bond < 0 {
		errs = append(errs, "bond cannot be negative")
	}
	for _, rec := range []struct {
		label string
		r     dto.AcademicRecordRequest
	}{
		{"tenthCutoff", req.TenthCutoff}, {"twelfthCutoff", req.TwelfthCutoff},
		{"ugCutoff", req.UGCutoff}, {"pgCutoff", req.PGCutoff},
	} {
		if !validation.ValidCGPA(rec.r.CGPA) {
			errs = append(errs, fmt.Sprintf("%s cgpa must be between 0 and 10", rec.label))
		}
		if !validation.ValidPercentage(rec.r.Percentage) {
			errs = append(errs, fmt.Sprintf("%s percentage must be between 0 and 100", rec.label))
		}
	}

	return errs
}

func applyCompanyRequest(c *models.Company, req *dto.CompanyRequest) {
	c.Name = req.Name
	c.Status = models.CompanyStatus(req.Status)
	c.OfferType = models.OfferType(req.OfferType)
	c.Profile = req.Profile
	c.ProfileType = models.ProfileType(req.ProfileType)
	c.CTC = req.CTC
	c.CTCBase = req.CTCBase
	c.Bond = req.Bond
	c.TenthCutoff = models.AcademicRecord{CGPA: req.TenthCutoff.CGPA, Percentage: req.TenthCutoff.Percentage}
	c.TwelfthCutoff = models.AcademicRecord{CGPA: req.TwelfthCutoff.CGPA, Percentage: req.TwelfthCutoff.Percentage}
	c.UGCutoff = models.AcademicRecord{CGPA: req.UGCutoff.CGPA, Percentage: req.UGCutoff.Percentage}
	c.PGCutoff = models.AcademicRecord{CGPA: req.PGCutoff.CGPA, Percentage: req.PGCutoff.Percentage}
	c.Locations = req.Locations
	c.DateOfOffer = req.DateOfOffer
}

// CreateCompany registers a new company with an empty selected-students list.
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CompanyRequest) (*models.Company, error) {
	if errs := validateCompanyRequest(req); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	company := &models.Company{
		ID:                     uuid.New(),
		SelectedStudentsRollNo: []string{},
	}
	applyCompanyRequest(company, req)

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info().Str("companyId", company.ID.String()).Str("name", company.Name).Msg("Company created")
	return company, nil
}

// GetCompany returns one company by id.
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// ListCompanies returns every registered company.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.companies.List(ctx)
}

// UpdateCompany replaces a company's descriptive fields. The selected-students
// list survives the update untouched.
func (s *CompanyService) UpdateCompany(ctx context.Context, id uuid.UUID, req *dto.CompanyRequest) (*models.Company, error) {
	if errs := validateCompanyRequest(req); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCompanyRequest(company, req)

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company and, in the same transaction, reverts every
// student placed into it back to unplaced.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.placements.CascadeDeleteCompany(ctx, id)
}
