package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience is a student-authored interview/placement writeup.
type Experience struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	CompanyName string    `json:"companyName" db:"company_name"`
	Batch       int       `json:"batch" db:"batch"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
