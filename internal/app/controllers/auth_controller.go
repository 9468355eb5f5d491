// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/middleware"
)

// AuthController handles signup, login and the credential-reset flow.
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Signup handles account registration
// @Summary Register a new student account
// @Description Creates an unverified student account. A coordinator or admin must verify it before login works.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Registration payload"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Account created, awaiting verification"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userId", user.ID.String()).Str("email", user.Email).Msg("Signup accepted")
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Account created. An admin or coordinator must verify it before you can sign in."},
	})
}

// Login handles user login
// @Summary Sign in
// @Description Authenticates a verified account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials or account not verified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: token})
}

// RequestCode mails a one-time code
// @Summary Request a password-reset code
// @Description Mails a short-lived one-time code to the account's address, replacing any earlier code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RequestCodeRequest true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Code sent"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/request-otp [post]
func (c *AuthController) RequestCode(ctx *gin.Context) {
	var req dto.RequestCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.authService.RequestCode(ctx.Request.Context(), req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "A one-time code has been sent to your email."},
	})
}

// VerifyCode checks a one-time code
// @Summary Verify a password-reset code
// @Description Consumes the one-time code and opens a short reset window for the email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyCodeRequest true "Email and code"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Code verified"
// @Failure 401 {object} dto.ErrorResponse "Code does not match"
// @Failure 404 {object} dto.ErrorResponse "No active code for this email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/verify-otp [post]
func (c *AuthController) VerifyCode(ctx *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.authService.VerifyCode(ctx.Request.Context(), req.Email, req.Code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Code verified. You can reset your password now."},
	})
}

// ResetPassword sets a new password
// @Summary Reset the password
// @Description Sets a new password for an email that passed code verification
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password reset"
// @Failure 400 {object} dto.ErrorResponse "Weak password"
// @Failure 403 {object} dto.ErrorResponse "Code verification required first"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), req.Email, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Password has been reset."},
	})
}
