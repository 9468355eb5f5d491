package models

import (
	"time"

	"github.com/google/uuid"
)

// NotPlacedCompanyID is the sentinel marking an unplaced student. A reserved
// marker rather than NULL so the placement sub-record always round-trips as a
// whole.
const NotPlacedCompanyID = "np"

// AcademicRecord is one academic stage score pair.
type AcademicRecord struct {
	CGPA       float64 `json:"cgpa"`
	Percentage float64 `json:"percentage"`
}

// Placement is the denormalized snapshot of the offer a student accepted.
// Terms are copied from the company at assignment time and do not track later
// company updates.
type Placement struct {
	CompanyID   string  `json:"companyId" db:"placed_company_id"`
	CompanyName string  `json:"companyName" db:"placed_company_name"`
	CTC         float64 `json:"ctc" db:"placed_ctc"`
	CTCBase     float64 `json:"ctcBase" db:"placed_ctc_base"`
	Profile     string  `json:"profile" db:"placed_profile"`
	ProfileType string  `json:"profileType" db:"placed_profile_type"`
	OfferType   string  `json:"offerType" db:"placed_offer_type"`
	Location    string  `json:"location" db:"placed_location"`
	Bond        int     `json:"bond" db:"placed_bond"`
}

// NotPlaced returns the sentinel placement record.
func NotPlaced() Placement {
	return Placement{CompanyID: NotPlacedCompanyID, Location: "N/A"}
}

// User defines the user model based on the 'users' table
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"`
	Name       string    `json:"name" db:"name"`
	RollNo     string    `json:"rollNo" db:"roll_no"`
	Role       Role      `json:"role" db:"role"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	Batch      int       `json:"batch" db:"batch"`

	Tenth    AcademicRecord `json:"tenth"`
	Twelfth  AcademicRecord `json:"twelfth"`
	UG       AcademicRecord `json:"ug"`
	PG       AcademicRecord `json:"pg"`
	Backlogs int            `json:"backlogs" db:"backlogs"`
	GapYears int            `json:"gapYears" db:"gap_years"`

	Placed   bool      `json:"placed" db:"placed"`
	PlacedAt Placement `json:"placedAt"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
