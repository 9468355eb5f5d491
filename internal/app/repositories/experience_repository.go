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

// ExperienceRepository handles experience database operations
type ExperienceRepository struct {
	db Querier
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db Querier) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// Create inserts a new experience
func (r *ExperienceRepository) Create(ctx context.Context, e *models.Experience) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO experiences (id, user_id, student_name, company_name, batch, content)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.StudentName, e.CompanyName, e.Batch, e.Content)
	if err != nil {
		return fmt.Errorf("error creating experience: %w", err)
	}
	return nil
}

// GetByID retrieves an experience by id
func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	e := &models.Experience{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, student_name, company_name, batch, content, created_at
		FROM experiences WHERE id = $1`, id).Scan(
		&e.ID, &e.UserID, &e.StudentName, &e.CompanyName, &e.Batch, &e.Content, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("error retrieving experience: %w", err)
	}
	return e, nil
}

// List retrieves all experiences, newest first.
func (r *ExperienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, student_name, company_name, batch, content, created_at
		FROM experiences ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing experiences: %w", err)
	}
	defer rows.Close()

	var experiences []*models.Experience
	for rows.Next() {
		e := &models.Experience{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.StudentName, &e.CompanyName,
			&e.Batch, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// Delete removes an experience record
func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExperienceNotFound
	}
	return nil
}
