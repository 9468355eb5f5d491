package repositories

import (
	"context"
	"fmt"

	"github.com/devang/placeport/internal/app/models/dto"
)

// StatsRepository runs the read-only aggregate queries behind the statistics
// endpoints. It only ever reads state the placement service keeps consistent.
type StatsRepository struct {
	db Querier
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db Querier) *StatsRepository {
	return &StatsRepository{db: db}
}

// PlacementsByBatch counts placed and total students per graduating batch.
func (r *StatsRepository) PlacementsByBatch(ctx context.Context) ([]dto.BatchPlacementStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT batch, COUNT(*), COUNT(*) FILTER (WHERE placed)
		FROM users
		WHERE role = 'student'
		GROUP BY batch
		ORDER BY batch`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating placements by batch: %w", err)
	}
	defer rows.Close()

	var stats []dto.BatchPlacementStats
	for rows.Next() {
		var s dto.BatchPlacementStats
		if err := rows.Scan(&s.Batch, &s.Total, &s.Placed); err != nil {
			return nil, fmt.Errorf("error scanning batch stats: %w", err)
		}
		s.Unplaced = s.Total - s.Placed
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CTCByProfile aggregates accepted offer terms per profile category.
func (r *StatsRepository) CTCByProfile(ctx context.Context) ([]dto.ProfileCTCStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT placed_profile_type, COUNT(*),
			MIN(placed_ctc), AVG(placed_ctc), MAX(placed_ctc)
		FROM users
		WHERE placed
		GROUP BY placed_profile_type
		ORDER BY placed_profile_type`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating ctc by profile: %w", err)
	}
	defer rows.Close()

	var stats []dto.ProfileCTCStats
	for rows.Next() {
		var s dto.ProfileCTCStats
		if err := rows.Scan(&s.ProfileType, &s.Offers, &s.MinCTC, &s.AvgCTC, &s.MaxCTC); err != nil {
			return nil, fmt.Errorf("error scanning profile stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CompaniesByStatus counts companies per lifecycle status.
func (r *StatsRepository) CompaniesByStatus(ctx context.Context) ([]dto.CompanyStatusStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM companies
		GROUP BY status
		ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating companies by status: %w", err)
	}
	defer rows.Close()

	var stats []dto.CompanyStatusStats
	for rows.Next() {
		var s dto.CompanyStatusStats
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("error scanning company stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
