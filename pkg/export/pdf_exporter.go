package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// KeyValue is one labelled line in the report cover block.
type KeyValue struct {
	Key   string
	Value string
}

// ReportEntry is one checklist item within a report section.
type ReportEntry struct {
	Text       string
	Reference  string
	Answer     string
	Notes      string
	PhotoCount int
}

// ReportSection groups entries under a section heading.
type ReportSection struct {
	Title   string
	Entries []ReportEntry
}

// ReportDocument describes a printable audit report.
type ReportDocument struct {
	Title       string
	Subtitle    string
	Cover       []KeyValue
	Summary     string
	Sections    []ReportSection
	AccentColor string // hex, e.g. "#005C99"
}

// PDFExporter renders report documents into PDF bytes.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the printable report: cover block, summary, then one
// block per section with its entries. Photos are represented by count only.
func (e *PDFExporter) Render(doc ReportDocument) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 15, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	ar, ag, ab := parseHexColor(doc.AccentColor)
	pdf.SetTextColor(ar, ag, ab)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(75, 85, 99)
		pdf.CellFormat(0, 6, tr(doc.Subtitle), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetTextColor(17, 24, 39)
	for _, kv := range doc.Cover {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 6, tr(kv.Key), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(kv.Value), "", "L", false)
	}
	if doc.Summary != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 10)
		pdf.MultiCell(0, 6, tr(doc.Summary), "", "L", false)
	}

	for _, sec := range doc.Sections {
		pdf.Ln(4)
		pdf.SetFillColor(245, 247, 250)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, tr(sec.Title), "", 1, "L", true, 0, "")

		for _, entry := range sec.Entries {
			pdf.Ln(1)
			pdf.SetFont("Arial", "B", 9)
			pdf.MultiCell(0, 5, tr(entry.Text), "", "L", false)
			pdf.SetFont("Arial", "", 8)
			pdf.SetTextColor(107, 114, 128)
			pdf.MultiCell(0, 4, tr("Ref: "+entry.Reference), "", "L", false)
			pdf.SetTextColor(17, 24, 39)
			pdf.SetFont("Arial", "", 9)
			answer := entry.Answer
			if answer == "" {
				answer = "-"
			}
			pdf.MultiCell(0, 5, tr("Answer: "+answer), "", "L", false)
			if entry.Notes != "" {
				pdf.MultiCell(0, 5, tr("Notes: "+entry.Notes), "", "L", false)
			}
			if entry.PhotoCount > 0 {
				pdf.MultiCell(0, 5, fmt.Sprintf("Photos: %d", entry.PhotoCount), "", "L", false)
			}
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHexColor(hex string) (r, g, b int) {
	if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return 17, 24, 39
	}
	return r, g, b
}
