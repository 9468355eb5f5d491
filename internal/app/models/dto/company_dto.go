package dto

import "time"

// CompanyRequest creates or updates a company. The selected-students list is
// intentionally absent: it is owned by the placement service.
type CompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	OfferType   string  `json:"offerType" binding:"required"`
	Profile     string  `json:"profile" binding:"required"`
	ProfileType string  `json:"profileType" binding:"required"`
	CTC         float64 `json:"ctc"`
	CTCBase     float64 `json:"ctcBase"`
	Bond        int     `json:"bond"`

	TenthCutoff   AcademicRecordRequest `json:"tenthCutoff"`
	TwelfthCutoff AcademicRecordRequest `json:"twelfthCutoff"`
	UGCutoff      AcademicRecordRequest `json:"ugCutoff"`
	PGCutoff      AcademicRecordRequest `json:"pgCutoff"`

	Locations   []string  `json:"locations"`
	DateOfOffer time.Time `json:"dateOfOffer"`
}
