package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/middleware"
	"github.com/devang/placeport/internal/pkg/apperrors"
)

// UserController handles user directory and placement operations.
type UserController struct {
	userService      *services.UserService
	placementService *services.PlacementService
	logger           zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, placementService *services.PlacementService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:      userService,
		placementService: placementService,
		logger:           logger,
	}
}

func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidID, "Malformed id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return uuid.Nil, false
	}
	return id, true
}

func mustCurrentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}
	return user, true
}

// ListUsers returns every account
// @Summary List users
// @Description Returns the full user directory. Coordinator or admin only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// GetUser returns one account
// @Summary Get a user
// @Description Returns one account. Students can only fetch their own record.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: user})
}

// VerifyUser toggles the verification flag
// @Summary Verify or unverify a user
// @Description Sets the verification flag on an account. You cannot change your own flag.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body dto.VerifyUserRequest true "Desired flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Self action or permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/verify [patch]
func (c *UserController) VerifyUser(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.VerifyUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.userService.SetVerified(ctx.Request.Context(), actor.ID, id, req.IsVerified); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Verification flag updated."}})
}

// ChangeRole assigns a new role
// @Summary Change a user's role
// @Description Assigns student, coordinator or admin. Admin only; you cannot change your own role.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body dto.ChangeRoleRequest true "New role"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Failure 403 {object} dto.ErrorResponse "Self action or permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/role [patch]
func (c *UserController) ChangeRole(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.userService.ChangeRole(ctx.Request.Context(), actor.ID, id, models.Role(req.Role)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Role updated."}})
}

// AssignCompany places a user at a company
// @Summary Assign a user to a company
// @Description Places the user at the given company, moving them off any previous company. Use companyId "np" to mark the user unplaced.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body dto.AssignCompanyRequest true "Company id or \"np\""
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed company id"
// @Failure 404 {object} dto.ErrorResponse "User or company not found"
// @Router /users/{id}/company [patch]
func (c *UserController) AssignCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AssignCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.placementService.AssignPlacement(ctx.Request.Context(), id, req.CompanyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Placement updated."}})
}

// AssignLocation sets the work location
// @Summary Set a placed user's work location
// @Description Updates the location on an existing placement. Students can update their own; coordinators and admins anyone's. Fails if the user is not placed.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body dto.AssignLocationRequest true "Location"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "User is not placed"
// @Router /users/{id}/location [patch]
func (c *UserController) AssignLocation(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if actor.Role == models.RoleStudent && actor.ID != id {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.AssignLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.placementService.AssignLocation(ctx.Request.Context(), id, req.Location); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Location updated."}})
}

// DeleteUser removes an account
// @Summary Delete a user
// @Description Removes the account and detaches it from any company it was placed into. Coordinator or admin; you cannot delete yourself.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Self action or permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actor, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), actor.ID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User deleted."}})
}
