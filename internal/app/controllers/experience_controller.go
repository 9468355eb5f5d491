package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/middleware"
)

// ExperienceController handles the interview-experience board.
type ExperienceController struct {
	experienceService *services.ExperienceService
	logger            zerolog.Logger
}

// NewExperienceController creates a new ExperienceController
func NewExperienceController(experienceService *services.ExperienceService, logger zerolog.Logger) *ExperienceController {
	return &ExperienceController{experienceService: experienceService, logger: logger}
}

// ListExperiences returns the board
// @Summary List interview experiences
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Experience}
// @Router /experiences [get]
func (c *ExperienceController) ListExperiences(ctx *gin.Context) {
	experiences, err := c.experienceService.ListExperiences(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: experiences})
}

// GetExperience returns one post
// @Summary Get an interview experience
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience id"
// @Success 200 {object} dto.APIResponse{data=models.Experience}
// @Failure 404 {object} dto.ErrorResponse "Experience not found"
// @Router /experiences/{id} [get]
func (c *ExperienceController) GetExperience(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	exp, err := c.experienceService.GetExperience(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: exp})
}

// CreateExperience posts a writeup
// @Summary Post an interview experience
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExperienceRequest true "Experience payload"
// @Success 201 {object} dto.APIResponse{data=models.Experience}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /experiences [post]
func (c *ExperienceController) CreateExperience(ctx *gin.Context) {
	author, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	var req dto.ExperienceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	exp, err := c.experienceService.CreateExperience(ctx.Request.Context(), author, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: exp})
}

// DeleteExperience removes a post
// @Summary Delete an interview experience
// @Description Authors can delete their own posts; coordinators and admins can delete anyone's.
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Experience not found"
// @Router /experiences/{id} [delete]
func (c *ExperienceController) DeleteExperience(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.experienceService.DeleteExperience(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Experience deleted."}})
}
