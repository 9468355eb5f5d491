package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

// ExperienceService handles the interview-experience board.
type ExperienceService struct {
	experiences repositories.ExperienceStore
	logger      zerolog.Logger
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(experiences repositories.ExperienceStore, logger zerolog.Logger) *ExperienceService {
	return &ExperienceService{experiences: experiences, logger: logger}
}

// CreateExperience posts a writeup on behalf of the given author. Name and
// batch are snapshotted from the author so the post survives account removal.
func (s *ExperienceService) CreateExperience(ctx context.Context, author *models.User, req *dto.ExperienceRequest) (*models.Experience, error) {
	var errs []string
	if strings.TrimSpace(req.CompanyName) == "" {
		errs = append(errs, "companyName is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		errs = append(errs, "content is required")
	}
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	exp := &models.Experience{
		ID:          uuid.New(),
		UserID:      author.ID,
		StudentName: author.Name,
		CompanyName: req.CompanyName,
		Batch:       author.Batch,
		Content:     req.Content,
	}
	if err := s.experiences.Create(ctx, exp); err != nil {
		return nil, err
	}

	s.logger.Info().Str("experienceId", exp.ID.String()).Str("company", exp.CompanyName).Msg("Experience posted")
	return exp, nil
}

// ListExperiences returns the board, newest first.
func (s *ExperienceService) ListExperiences(ctx context.Context) ([]*models.Experience, error) {
	return s.experiences.List(ctx)
}

// GetExperience returns a single post. Readable by any verified account.
func (s *ExperienceService) GetExperience(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	return s.experiences.GetByID(ctx, id)
}

// DeleteExperience removes a post. Authors can delete their own posts;
// coordinators and admins can delete anyone's.
func (s *ExperienceService) DeleteExperience(ctx context.Context, actor *models.User, id uuid.UUID) error {
	exp, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role == models.RoleStudent && exp.UserID != actor.ID {
		return apperrors.ErrPermissionDenied
	}
	return s.experiences.Delete(ctx, id)
}
