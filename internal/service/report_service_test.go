package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celtic-scaffold/audit-api/internal/dto"
	"github.com/celtic-scaffold/audit-api/internal/models"
)

func sessionPatch(project, location string) dto.UpdateSessionRequest {
	return dto.UpdateSessionRequest{Project: &project, Location: &location}
}

func newReportServiceForTest(t *testing.T) (*ReportService, *AuditService) {
	t.Helper()
	catalog := models.DefaultCatalog()
	audit := NewAuditService(catalog, models.DefaultState("2468"), &gatewayStub{}, nil, nil)
	return NewReportService(catalog, audit), audit
}

func TestReportCoversEveryCatalogItemExactlyOnce(t *testing.T) {
	reports, _ := newReportServiceForTest(t)
	catalog := models.DefaultCatalog()

	report := reports.Build()

	total := 0
	for _, section := range report.Sections {
		total += len(section.Items)
		for _, item := range section.Items {
			assert.Equal(t, catalog[item.Index].Section, section.Section)
		}
	}
	require.Equal(t, len(catalog), total)
	require.Equal(t, len(catalog), report.Summary.CatalogTotal)
}

func TestReportSectionsInFirstAppearanceOrder(t *testing.T) {
	reports, _ := newReportServiceForTest(t)

	report := reports.Build()

	want := models.DefaultCatalog().Sections()
	got := make([]string, 0, len(report.Sections))
	for _, section := range report.Sections {
		got = append(got, section.Section)
	}
	require.Equal(t, want, got)
}

func TestReportSummaryCounts(t *testing.T) {
	reports, audit := newReportServiceForTest(t)

	require.NoError(t, audit.SetAnswer(0, models.ChoiceNo))
	require.NoError(t, audit.SetAnswer(1, models.ChoiceYes))
	require.NoError(t, audit.SetAnswer(2, models.ChoiceNo))
	require.NoError(t, audit.SetNotes(3, "notes only, not answered"))

	report := reports.Build()
	assert.Equal(t, 3, report.Summary.AnsweredTotal)
	assert.Equal(t, 2, report.Summary.NoCount)
	assert.Equal(t, len(models.DefaultCatalog()), report.Summary.CatalogTotal)
}

func TestReportUntouchedItemsGetEmptyPlaceholder(t *testing.T) {
	reports, audit := newReportServiceForTest(t)
	require.NoError(t, audit.SetAnswer(0, models.ChoiceYes))

	report := reports.Build()

	first := report.Sections[0].Items
	assert.Equal(t, models.ChoiceYes, first[0].Answer.Ans)
	// Item 1 was never touched.
	assert.Equal(t, models.ChoiceUnanswered, first[1].Answer.Ans)
	assert.Equal(t, "", first[1].Answer.Notes)
	assert.Empty(t, first[1].Answer.Photos)
}

func TestReportReflectsLatestStateOnRebuild(t *testing.T) {
	reports, audit := newReportServiceForTest(t)

	before := reports.Build()
	assert.Equal(t, 0, before.Summary.AnsweredTotal)

	require.NoError(t, audit.SetAnswer(4, models.ChoiceNA))

	after := reports.Build()
	assert.Equal(t, 1, after.Summary.AnsweredTotal)
	// The earlier projection is untouched; Build never mutates state.
	assert.Equal(t, 0, before.Summary.AnsweredTotal)
}

func TestReportCoverMirrorsSessionFields(t *testing.T) {
	reports, audit := newReportServiceForTest(t)
	audit.UpdateSession(sessionPatch("Quayside works", "Cork"))

	report := reports.Build()
	require.NotEmpty(t, report.Cover)
	assert.Equal(t, "Project / Site", report.Cover[0].Label)
	assert.Equal(t, "Quayside works", report.Cover[0].Value)
	assert.Equal(t, "Cork", report.Cover[1].Value)
}
