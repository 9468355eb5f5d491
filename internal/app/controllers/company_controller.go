package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/middleware"
)

// CompanyController handles the company registry.
type CompanyController struct {
	companyService *services.CompanyService
	logger         zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{companyService: companyService, logger: logger}
}

// ListCompanies returns every company
// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company}
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: companies})
}

// GetCompany returns one company
// @Summary Get a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	company, err := c.companyService.GetCompany(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: company})
}

// CreateCompany registers a company
// @Summary Create a company
// @Description Registers a company with an empty selected-students list. Coordinator or admin only.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyRequest true "Company payload"
// @Success 201 {object} dto.APIResponse{data=models.Company}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	company, err := c.companyService.CreateCompany(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("companyId", company.ID.String()).Msg("Company registered")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: company})
}

// UpdateCompany rewrites a company's descriptive fields
// @Summary Update a company
// @Description Replaces the company's descriptive fields. The selected-students list is not writable here.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id"
// @Param request body dto.CompanyRequest true "Company payload"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	company, err := c.companyService.UpdateCompany(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: company})
}

// DeleteCompany removes a company
// @Summary Delete a company
// @Description Deletes the company and reverts every student placed into it back to unplaced, atomically.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.companyService.DeleteCompany(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Company deleted."}})
}
