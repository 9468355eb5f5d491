package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyStatus is the visit lifecycle state.
type CompanyStatus string

const (
	CompanyOngoing   CompanyStatus = "ongoing"
	CompanyUpcoming  CompanyStatus = "upcoming"
	CompanyCompleted CompanyStatus = "completed"
	CompanyCancelled CompanyStatus = "cancelled"
)

// ValidCompanyStatus reports whether s names a known status.
func ValidCompanyStatus(s string) bool {
	switch CompanyStatus(s) {
	case CompanyOngoing, CompanyUpcoming, CompanyCompleted, CompanyCancelled:
		return true
	}
	return false
}

// OfferType is the kind of offer a company extends.
type OfferType string

const (
	OfferPPO      OfferType = "PPO"
	OfferFTE      OfferType = "FTE"
	OfferSixMFTE  OfferType = "6M+FTE"
	OfferIntern   OfferType = "Intern"
)

// ValidOfferType reports whether s names a known offer type.
func ValidOfferType(s string) bool {
	switch OfferType(s) {
	case OfferPPO, OfferFTE, OfferSixMFTE, OfferIntern:
		return true
	}
	return false
}

// ProfileType is the offered role category.
type ProfileType string

const (
	ProfileSoftware ProfileType = "Software"
	ProfileAnalyst  ProfileType = "Analyst"
	ProfileOthers   ProfileType = "Others"
)

// ValidProfileType reports whether s names a known profile category.
func ValidProfileType(s string) bool {
	switch ProfileType(s) {
	case ProfileSoftware, ProfileAnalyst, ProfileOthers:
		return true
	}
	return false
}

// Company defines the company model based on the 'companies' table.
// SelectedStudentsRollNo is NOT a foreign key into users: the pair is kept
// consistent by the placement service, never by the schema.
type Company struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Status      CompanyStatus `json:"status" db:"status"`
	OfferType   OfferType     `json:"offerType" db:"offer_type"`
	Profile     string        `json:"profile" db:"profile"`
	ProfileType ProfileType   `json:"profileType" db:"profile_type"`
	CTC         float64       `json:"ctc" db:"ctc"`
	CTCBase     float64       `json:"ctcBase" db:"ctc_base"`
	Bond        int           `json:"bond" db:"bond"`

	TenthCutoff   AcademicRecord `json:"tenthCutoff"`
	TwelfthCutoff AcademicRecord `json:"twelfthCutoff"`
	UGCutoff      AcademicRecord `json:"ugCutoff"`
	PGCutoff      AcademicRecord `json:"pgCutoff"`

	Locations              []string  `json:"locations" db:"locations"`
	DateOfOffer            time.Time `json:"dateOfOffer" db:"date_of_offer"`
	SelectedStudentsRollNo []string  `json:"selectedStudentsRollNo" db:"selected_students_roll_no"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
