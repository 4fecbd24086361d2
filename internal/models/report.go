package models

// ReportItem pairs a catalog item with its current answer (an empty
// placeholder when the item has not been touched).
type ReportItem struct {
	Index     int          `json:"index"`
	Text      string       `json:"text"`
	Reference string       `json:"reference"`
	Answer    AnswerRecord `json:"answer"`
}

// ReportSectionView groups items under one section heading.
type ReportSectionView struct {
	Section string       `json:"section"`
	Items   []ReportItem `json:"items"`
}

// ReportSummary carries the progress counts shown on the report header.
type ReportSummary struct {
	AnsweredTotal int `json:"answeredTotal"`
	CatalogTotal  int `json:"catalogTotal"`
	NoCount       int `json:"noCount"`
}

// Report is the derived, read-only projection of catalog plus state.
type Report struct {
	Cover    []CoverField        `json:"cover"`
	Sections []ReportSectionView `json:"sections"`
	Summary  ReportSummary       `json:"summary"`
}
