package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/celtic-scaffold/audit-api/internal/models"
	"github.com/celtic-scaffold/audit-api/pkg/config"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
	"github.com/celtic-scaffold/audit-api/pkg/export"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type xlsxRenderer interface {
	Render(sheets []export.Sheet) ([]byte, error)
}

type pdfRenderer interface {
	Render(doc export.ReportDocument) ([]byte, error)
}

// ExportResult is a rendered artifact ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the state into downloadable artifacts and parses
// imported snapshots. The JSON snapshot is the only full-fidelity format;
// xlsx, CSV and PDF are lossy one-way reports (photo counts, no binaries).
type ExportService struct {
	catalog models.Catalog
	source  stateSource
	storage fileStorage
	csv     csvRenderer
	xlsx    xlsxRenderer
	pdf     pdfRenderer
	brand   config.BrandConfig
	metrics *MetricsService
	logger  *zap.Logger
}

// NewExportService constructs an ExportService. storage may be nil to
// skip the on-disk archival copy; nil renderers get defaults.
func NewExportService(catalog models.Catalog, source stateSource, storage fileStorage, brand config.BrandConfig, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		catalog: catalog,
		source:  source,
		storage: storage,
		csv:     export.NewCSVExporter(),
		xlsx:    export.NewXLSXExporter(),
		pdf:     export.NewPDFExporter(),
		brand:   brand,
		metrics: metrics,
		logger:  logger,
	}
}

// ExportJSON serializes the full state, photos included. Importing the
// result reconstructs the state exactly.
func (s *ExportService) ExportJSON() (*ExportResult, error) {
	state := s.source.State()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return s.finish("json", state.Date, "json", "application/json", data)
}

// ExportXLSX renders the two-sheet workbook: "Checklist" with one row
// per catalog item and "Cover" with one row per cover field.
func (s *ExportService) ExportXLSX() (*ExportResult, error) {
	state := s.source.State()
	data, err := s.xlsx.Render([]export.Sheet{
		{Name: "Checklist", Data: s.checklistDataset(state)},
		{Name: "Cover", Data: coverDataset(state)},
	})
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return s.finish("xlsx", state.Date, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportCSV renders the checklist sheet alone as CSV.
func (s *ExportService) ExportCSV() (*ExportResult, error) {
	state := s.source.State()
	data, err := s.csv.Render(s.checklistDataset(state))
	if err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return s.finish("csv", state.Date, "csv", "text/csv; charset=utf-8", data)
}

// ExportPDF renders the printable report: cover block, summary line and
// every section with its items.
func (s *ExportService) ExportPDF() (*ExportResult, error) {
	state := s.source.State()

	sections := s.catalog.Sections()
	grouped := make(map[string][]export.ReportEntry, len(sections))
	for idx, item := range s.catalog {
		entry := export.ReportEntry{Text: item.Text, Reference: item.Reference}
		if rec, ok := state.Answers[idx]; ok && rec != nil {
			entry.Answer = string(rec.Ans)
			entry.Notes = rec.Notes
			entry.PhotoCount = len(rec.Photos)
		}
		grouped[item.Section] = append(grouped[item.Section], entry)
	}
	docSections := make([]export.ReportSection, 0, len(sections))
	for _, section := range sections {
		docSections = append(docSections, export.ReportSection{Title: section, Entries: grouped[section]})
	}

	cover := make([]export.KeyValue, 0, 7)
	for _, field := range state.CoverFields() {
		cover = append(cover, export.KeyValue{Key: field.Label, Value: field.Value})
	}

	doc := export.ReportDocument{
		Title:       "Scaffolding Audit Report",
		Subtitle:    s.brand.Name + " — Scaffolding Audit (HSA / CIF)",
		Cover:       cover,
		Summary:     fmt.Sprintf("Summary: %d/%d answered, %d items marked \"No\".", state.AnsweredCount(), len(s.catalog), state.NoCount()),
		Sections:    docSections,
		AccentColor: s.brand.Primary,
	}

	data, err := s.pdf.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return s.finish("pdf", state.Date, "pdf", "application/pdf", data)
}

// Import parses a previously exported JSON snapshot. On failure nothing
// is returned and the caller's state must remain untouched; on success
// the caller replaces its state wholesale.
func (s *ExportService) Import(data []byte) (*models.AuditState, error) {
	state := &models.AuditState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrImportFailed.Code, appErrors.ErrImportFailed.Status, appErrors.ErrImportFailed.Message)
	}
	state.Normalize()
	return state, nil
}

func (s *ExportService) checklistDataset(state *models.AuditState) export.Dataset {
	rows := make([]map[string]string, 0, len(s.catalog))
	for idx, item := range s.catalog {
		answer, notes, photoCount := "", "", 0
		if rec, ok := state.Answers[idx]; ok && rec != nil {
			answer = string(rec.Ans)
			notes = rec.Notes
			photoCount = len(rec.Photos)
		}
		rows = append(rows, map[string]string{
			"Section":    item.Section,
			"Item":       item.Text,
			"Reference":  item.Reference,
			"Answer":     answer,
			"Notes":      notes,
			"PhotoCount": strconv.Itoa(photoCount),
		})
	}
	return export.Dataset{
		Headers: []string{"Section", "Item", "Reference", "Answer", "Notes", "PhotoCount"},
		Rows:    rows,
	}
}

func coverDataset(state *models.AuditState) export.Dataset {
	fields := state.CoverFields()
	rows := make([]map[string]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, map[string]string{"Field": field.Label, "Value": field.Value})
	}
	return export.Dataset{Headers: []string{"Field", "Value"}, Rows: rows}
}

func (s *ExportService) finish(format, date, ext, contentType string, data []byte) (*ExportResult, error) {
	s.metrics.ObserveExport(format)
	filename := fmt.Sprintf("Scaffold_Audit_%s.%s", sanitizeFilename(date), ext)
	if s.storage != nil {
		if _, err := s.storage.Save(filename, data); err != nil {
			s.logger.Warn("export archive copy failed", zap.String("filename", filename), zap.Error(err))
		}
	}
	return &ExportResult{Filename: filename, ContentType: contentType, Data: data}, nil
}

// sanitizeFilename keeps the audit date usable as a file name; the date
// field is free text by contract.
func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "\"", "", "'", "")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
