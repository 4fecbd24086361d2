package service

import (
	"github.com/celtic-scaffold/audit-api/internal/models"
)

// stateSource provides a consistent snapshot of the application state.
type stateSource interface {
	State() *models.AuditState
}

// ReportService derives the section-grouped report view. It holds no
// state of its own; every Build reflects the latest snapshot.
type ReportService struct {
	catalog models.Catalog
	source  stateSource
}

// NewReportService constructs the projector.
func NewReportService(catalog models.Catalog, source stateSource) *ReportService {
	return &ReportService{catalog: catalog, source: source}
}

// Build groups catalog items by section in first-appearance order and
// attaches each item's answer record, or an empty placeholder when the
// item has not been touched.
func (s *ReportService) Build() models.Report {
	state := s.source.State()

	grouped := make(map[string][]models.ReportItem, 16)
	for idx, item := range s.catalog {
		answer := models.AnswerRecord{Photos: []string{}}
		if rec, ok := state.Answers[idx]; ok && rec != nil {
			answer = *rec
			if answer.Photos == nil {
				answer.Photos = []string{}
			}
		}
		grouped[item.Section] = append(grouped[item.Section], models.ReportItem{
			Index:     idx,
			Text:      item.Text,
			Reference: item.Reference,
			Answer:    answer,
		})
	}

	sections := s.catalog.Sections()
	views := make([]models.ReportSectionView, 0, len(sections))
	for _, section := range sections {
		views = append(views, models.ReportSectionView{
			Section: section,
			Items:   grouped[section],
		})
	}

	return models.Report{
		Cover:    state.CoverFields(),
		Sections: views,
		Summary: models.ReportSummary{
			AnsweredTotal: state.AnsweredCount(),
			CatalogTotal:  len(s.catalog),
			NoCount:       state.NoCount(),
		},
	}
}
