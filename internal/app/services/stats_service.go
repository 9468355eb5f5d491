package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/repositories"
)

// StatsService serves read-only placement aggregates.
type StatsService struct {
	stats  *repositories.StatsRepository
	logger zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(stats *repositories.StatsRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{stats: stats, logger: logger}
}

// PlacementStats aggregates per-batch placement counts and per-profile offer
// terms.
func (s *StatsService) PlacementStats(ctx context.Context) (*dto.PlacementStatsResponse, error) {
	batches, err := s.stats.PlacementsByBatch(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.stats.CTCByProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PlacementStatsResponse{Batches: batches, Profiles: profiles}, nil
}

// CompanyStats counts companies per lifecycle status.
func (s *StatsService) CompanyStats(ctx context.Context) (*dto.CompanyStatsResponse, error) {
	statuses, err := s.stats.CompaniesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyStatsResponse{Statuses: statuses}, nil
}
