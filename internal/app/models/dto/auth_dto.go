package dto

// AcademicRecordRequest is one academic stage score pair in a signup payload.
type AcademicRecordRequest struct {
	CGPA       float64 `json:"cgpa"`
	Percentage float64 `json:"percentage"`
}

// SignupRequest represents a new account registration
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	RollNo   string `json:"rollNo" binding:"required"`

	Tenth    AcademicRecordRequest `json:"tenth"`
	Twelfth  AcademicRecordRequest `json:"twelfth"`
	UG       AcademicRecordRequest `json:"ug"`
	PG       AcademicRecordRequest `json:"pg"`
	Backlogs int                   `json:"backlogs"`
	GapYears int                   `json:"gapYears"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// RequestCodeRequest asks for a one-time code to be mailed.
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyCodeRequest checks a one-time code.
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// ResetPasswordRequest sets a new password after code verification.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
