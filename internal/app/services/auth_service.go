package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/models/dto"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/pkg/apperrors"
	"github.com/devang/placeport/internal/pkg/auth"
	"github.com/devang/placeport/internal/pkg/email"
	"github.com/devang/placeport/internal/pkg/validation"
)

// AuthService handles signup, login and the credential-reset flow.
type AuthService struct {
	users       repositories.UserStore
	codes       repositories.CodeStore
	mailer      email.Sender
	jwtService  *auth.JWTService
	emailDomain string
	codeTTL     time.Duration
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserStore,
	codes repositories.CodeStore,
	mailer email.Sender,
	jwtService *auth.JWTService,
	emailDomain string,
	codeTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		codes:       codes,
		mailer:      mailer,
		jwtService:  jwtService,
		emailDomain: emailDomain,
		codeTTL:     codeTTL,
		logger:      logger,
	}
}

// ValidateSignup runs the structural checks over a signup payload and returns
// every failure message at once. Pure over the payload; uniqueness is checked
// separately in Signup.
func (s *AuthService) ValidateSignup(req *dto.SignupRequest) []string {
	var errs []string

	if !validation.ValidEmail(req.Email, s.emailDomain) {
		errs = append(errs, fmt.Sprintf("email must be a valid %s address", s.emailDomain))
	}
	if !validation.ValidRollNo(req.RollNo) {
		errs = append(errs, "roll number must match the institutional format, e.g. 22MCF1R01")
	}
	if !validation.ValidPassword(req.Password) {
		errs = append(errs, "password must be at least 8 characters with a letter and a digit")
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	for _, rec := range []struct {
		label string
		r     dto.AcademicRecordRequest
	}{
		{"tenth", req.Tenth}, {"twelfth", req.Twelfth}, {"ug", req.UG}, {"pg", req.PG},
	} {
		if !validation.ValidCGPA(rec.r.CGPA) {
			errs = append(errs, fmt.Sprintf("%s cgpa must be between 0 and 10", rec.label))
		}
		if !validation.ValidPercentage(rec.r.Percentage) {
			errs = append(errs, fmt.Sprintf("%s percentage must be between 0 and 100", rec.label))
		}
	}
	if req.Backlogs < 0 {
		errs = append(errs, "backlogs cannot be negative")
	}
	if req.GapYears < 0 {
		errs = append(errs, "gap years cannot be negative")
	}

	return errs
}

// Signup creates a new unverified, unplaced student account.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	if errs := s.ValidateSignup(req); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.users.RollNoExists(ctx, req.RollNo)
	if err != nil {
		return nil, fmt.Errorf("error checking roll number: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRollNoAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:         uuid.New(),
		Email:      emailAddr,
		Password:   hashed,
		Name:       req.Name,
		RollNo:     req.RollNo,
		Role:       models.RoleStudent,
		IsVerified: false,
		Batch:      validation.BatchFromRollNo(req.RollNo),
		Tenth:      models.AcademicRecord{CGPA: req.Tenth.CGPA, Percentage: req.Tenth.Percentage},
		Twelfth:    models.AcademicRecord{CGPA: req.Twelfth.CGPA, Percentage: req.Twelfth.Percentage},
		UG:         models.AcademicRecord{CGPA: req.UG.CGPA, Percentage: req.UG.Percentage},
		PG:         models.AcademicRecord{CGPA: req.PG.CGPA, Percentage: req.PG.Percentage},
		Backlogs:   req.Backlogs,
		GapYears:   req.GapYears,
		Placed:     false,
		PlacedAt:   models.NotPlaced(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", user.ID.String()).
		Str("rollNo", user.RollNo).
		Int("batch", user.Batch).
		Msg("Account created, awaiting verification")
	return user, nil
}

// Login verifies credentials and issues an identity token. Unverified
// accounts cannot sign in; an admin or coordinator has to verify them first.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same answer as a wrong password, account existence stays private.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	token, err := s.jwtService.Issue(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("userId", user.ID.String()).Str("role", string(user.Role)).Msg("Login successful")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtService.Expiry().Seconds()),
	}, nil
}

// RequestCode issues a one-time code to the given email, superseding any
// outstanding code for it.
func (s *AuthService) RequestCode(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	if _, err := s.users.GetByEmail(ctx, emailAddr); err != nil {
		return err
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return fmt.Errorf("error generating code: %w", err)
	}
	hashed, err := auth.HashPassword(code)
	if err != nil {
		return fmt.Errorf("error hashing code: %w", err)
	}

	if err := s.codes.SaveCode(ctx, emailAddr, hashed, s.codeTTL); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(emailAddr, code); err != nil {
		return err
	}

	s.logger.Info().Str("email", emailAddr).Msg("One-time code issued")
	return nil
}

// VerifyCode checks a one-time code. A matching code is consumed (single
// use) and a verified marker opens the reset window; a mismatch leaves the
// code in place for another attempt within its TTL.
func (s *AuthService) VerifyCode(ctx context.Context, emailAddr, code string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	hashed, err := s.codes.PeekCode(ctx, emailAddr)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(hashed, code) {
		return apperrors.ErrCodeMismatch
	}

	if _, err := s.codes.ConsumeCode(ctx, emailAddr); err != nil {
		return err
	}
	if err := s.codes.MarkVerified(ctx, emailAddr, s.codeTTL); err != nil {
		return err
	}

	s.logger.Info().Str("email", emailAddr).Msg("One-time code verified")
	return nil
}

// ResetPassword sets a new password for an account whose reset flow passed
// code verification. The verified marker is consumed, so a second reset needs
// a fresh code.
func (s *AuthService) ResetPassword(ctx context.Context, emailAddr, newPassword string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	if !validation.ValidPassword(newPassword) {
		return apperrors.NewValidationError("password must be at least 8 characters with a letter and a digit")
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	if err := s.codes.ConsumeVerified(ctx, emailAddr); err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info().Str("userId", user.ID.String()).Msg("Password reset")
	return nil
}
