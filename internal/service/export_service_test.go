package service

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/celtic-scaffold/audit-api/internal/models"
	"github.com/celtic-scaffold/audit-api/pkg/config"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
	"github.com/celtic-scaffold/audit-api/pkg/storage"
)

type sourceStub struct {
	state *models.AuditState
}

func (s *sourceStub) State() *models.AuditState {
	return s.state.Clone()
}

func testBrand() config.BrandConfig {
	return config.BrandConfig{Name: "Celtic Scaffold Ltd.", Primary: "#005C99"}
}

func fixtureState() *models.AuditState {
	state := models.DefaultState("2468")
	state.Project = "Harbour crane base"
	state.Location = "Galway"
	state.Date = "2025-03-04"
	state.Inspector = "A. Murphy"
	state.Unlocked = true
	rec := state.EnsureRecord(0)
	rec.Ans = models.ChoiceNo
	rec.Notes = "crack in board"
	photo := state.EnsureRecord(5)
	photo.Ans = models.ChoiceYes
	photo.Photos = append(photo.Photos, "data:image/png;base64,AAAA", "data:image/png;base64,BBBB")
	return state
}

func newExportServiceForTest(t *testing.T, state *models.AuditState) *ExportService {
	t.Helper()
	return NewExportService(models.DefaultCatalog(), &sourceStub{state: state}, nil, testBrand(), nil, nil)
}

func TestExportImportRoundTripIsLossless(t *testing.T) {
	state := fixtureState()
	svc := newExportServiceForTest(t, state)

	result, err := svc.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "Scaffold_Audit_2025-03-04.json", result.Filename)
	assert.Equal(t, "application/json", result.ContentType)

	imported, err := svc.Import(result.Data)
	require.NoError(t, err)
	require.Equal(t, state, imported)
}

func TestRoundTripAfterMutations(t *testing.T) {
	audit := NewAuditService(models.DefaultCatalog(), models.DefaultState("2468"), &gatewayStub{}, nil, nil)
	require.NoError(t, audit.SetAnswer(0, models.ChoiceNo))
	require.NoError(t, audit.SetNotes(0, "crack in board"))

	svc := NewExportService(models.DefaultCatalog(), audit, nil, testBrand(), nil, nil)
	result, err := svc.ExportJSON()
	require.NoError(t, err)

	imported, err := svc.Import(result.Data)
	require.NoError(t, err)
	require.Contains(t, imported.Answers, 0)
	assert.Equal(t, models.ChoiceNo, imported.Answers[0].Ans)
	assert.Equal(t, "crack in board", imported.Answers[0].Notes)
	assert.Equal(t, []string{}, imported.Answers[0].Photos)
}

func TestImportFailureLeavesNothingBehind(t *testing.T) {
	svc := newExportServiceForTest(t, fixtureState())

	_, err := svc.Import([]byte("not json at all"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrImportFailed.Code, appErrors.FromError(err).Code)

	_, err = svc.Import([]byte(`["wrong","shape"]`))
	require.Error(t, err)
}

func TestExportXLSXWorkbookShape(t *testing.T) {
	svc := newExportServiceForTest(t, fixtureState())

	result, err := svc.ExportXLSX()
	require.NoError(t, err)
	assert.Equal(t, "Scaffold_Audit_2025-03-04.xlsx", result.Filename)

	wb, err := excelize.OpenReader(bytes.NewReader(result.Data))
	require.NoError(t, err)
	defer wb.Close() //nolint:errcheck

	require.Equal(t, []string{"Checklist", "Cover"}, wb.GetSheetList())

	header, err := wb.GetCellValue("Checklist", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Section", header)

	// Row 2 is catalog item 0, answered "No" with notes.
	answer, err := wb.GetCellValue("Checklist", "D2")
	require.NoError(t, err)
	assert.Equal(t, "No", answer)
	notes, err := wb.GetCellValue("Checklist", "E2")
	require.NoError(t, err)
	assert.Equal(t, "crack in board", notes)

	// Item 5 carries two photos, exported as a count only.
	photoCount, err := wb.GetCellValue("Checklist", "F7")
	require.NoError(t, err)
	assert.Equal(t, "2", photoCount)

	coverLabel, err := wb.GetCellValue("Cover", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Project / Site", coverLabel)
	coverValue, err := wb.GetCellValue("Cover", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Harbour crane base", coverValue)

	rows, err := wb.GetRows("Checklist")
	require.NoError(t, err)
	assert.Len(t, rows, len(models.DefaultCatalog())+1)
}

func TestExportCSVChecklistSheet(t *testing.T) {
	svc := newExportServiceForTest(t, fixtureState())

	result, err := svc.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "Scaffold_Audit_2025-03-04.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	assert.Equal(t, "Section,Item,Reference,Answer,Notes,PhotoCount", strings.TrimSpace(lines[0]))
	assert.Len(t, lines, len(models.DefaultCatalog())+1)
	assert.Contains(t, string(result.Data), "crack in board")
}

func TestExportPDFPrintableReport(t *testing.T) {
	svc := newExportServiceForTest(t, fixtureState())

	result, err := svc.ExportPDF()
	require.NoError(t, err)
	assert.Equal(t, "Scaffold_Audit_2025-03-04.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	require.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")))
	assert.Greater(t, len(result.Data), 1000)
}

func TestExportKeepsArchiveCopyOnDisk(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := NewExportService(models.DefaultCatalog(), &sourceStub{state: fixtureState()}, store, testBrand(), nil, nil)
	result, err := svc.ExportJSON()
	require.NoError(t, err)

	info, err := os.Stat(store.Path(result.Filename))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportFilenameSanitizesFreeTextDate(t *testing.T) {
	state := fixtureState()
	state.Date = "04/03/2025 am"
	svc := newExportServiceForTest(t, state)

	result, err := svc.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "Scaffold_Audit_04-03-2025_am.json", result.Filename)
}
