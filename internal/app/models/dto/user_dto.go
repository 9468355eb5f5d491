package dto

// VerifyUserRequest toggles the verification flag on an account.
type VerifyUserRequest struct {
	IsVerified bool `json:"isVerified"`
}

// ChangeRoleRequest changes an account's role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AssignCompanyRequest places a user at a company, or at the "np" sentinel to
// unplace them.
type AssignCompanyRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
}

// AssignLocationRequest sets the work location of an already-placed user.
type AssignLocationRequest struct {
	Location string `json:"location" binding:"required"`
}
