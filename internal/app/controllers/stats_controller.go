package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/middleware"
)

// StatsController serves read-only aggregates.
type StatsController struct {
	statsService *services.StatsService
	logger       zerolog.Logger
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService, logger zerolog.Logger) *StatsController {
	return &StatsController{statsService: statsService, logger: logger}
}

// PlacementStats aggregates placement figures
// @Summary Placement statistics
// @Description Per-batch placement counts and per-profile offer terms.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlacementStatsResponse}
// @Router /stats/placements [get]
func (c *StatsController) PlacementStats(ctx *gin.Context) {
	stats, err := c.statsService.PlacementStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// CompanyStats counts companies per status
// @Summary Company statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CompanyStatsResponse}
// @Router /stats/companies [get]
func (c *StatsController) CompanyStats(ctx *gin.Context) {
	stats, err := c.statsService.CompanyStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}
