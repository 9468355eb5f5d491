package dto

// BatchPlacementStats aggregates placement counts for one graduating batch.
type BatchPlacementStats struct {
	Batch    int `json:"batch"`
	Total    int `json:"total"`
	Placed   int `json:"placed"`
	Unplaced int `json:"unplaced"`
}

// ProfileCTCStats aggregates offer terms per profile category.
type ProfileCTCStats struct {
	ProfileType string  `json:"profileType"`
	Offers      int     `json:"offers"`
	MinCTC      float64 `json:"minCtc"`
	AvgCTC      float64 `json:"avgCtc"`
	MaxCTC      float64 `json:"maxCtc"`
}

// CompanyStatusStats counts companies per lifecycle status.
type CompanyStatusStats struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// PlacementStatsResponse is the /stats/placements body.
type PlacementStatsResponse struct {
	Batches  []BatchPlacementStats `json:"batches"`
	Profiles []ProfileCTCStats     `json:"profiles"`
}

// CompanyStatsResponse is the /stats/companies body.
type CompanyStatsResponse struct {
	Statuses []CompanyStatusStats `json:"statuses"`
}
