package dto

// ExperienceRequest creates an interview/placement writeup.
type ExperienceRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Content     string `json:"content" binding:"required"`
}
