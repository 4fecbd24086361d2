package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/celtic-scaffold/audit-api/internal/models"
	"github.com/celtic-scaffold/audit-api/internal/service"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
	"github.com/celtic-scaffold/audit-api/pkg/response"
)

type reportService interface {
	Build() models.Report
}

type exportService interface {
	ExportJSON() (*service.ExportResult, error)
	ExportXLSX() (*service.ExportResult, error)
	ExportCSV() (*service.ExportResult, error)
	ExportPDF() (*service.ExportResult, error)
	Import(data []byte) (*models.AuditState, error)
}

type stateReplacer interface {
	Replace(state *models.AuditState)
	State() *models.AuditState
}

// ReportHandler exposes the derived report, exports and snapshot import.
type ReportHandler struct {
	reports  reportService
	exports  exportService
	replacer stateReplacer
}

// NewReportHandler builds a new handler.
func NewReportHandler(reports reportService, exports exportService, replacer stateReplacer) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports, replacer: replacer}
}

// GetReport godoc
// @Summary Section-grouped report with summary counts
// @Tags Report
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.Build())
}

// ExportJSON godoc
// @Summary Download the full-fidelity JSON snapshot
// @Tags Export
// @Produce json
// @Success 200 {file} file
// @Router /export/json [get]
func (h *ReportHandler) ExportJSON(c *gin.Context) {
	h.attachment(c, h.exports.ExportJSON)
}

// ExportXLSX godoc
// @Summary Download the two-sheet xlsx workbook
// @Tags Export
// @Success 200 {file} file
// @Router /export/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	h.attachment(c, h.exports.ExportXLSX)
}

// ExportCSV godoc
// @Summary Download the checklist sheet as CSV
// @Tags Export
// @Success 200 {file} file
// @Router /export/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	h.attachment(c, h.exports.ExportCSV)
}

// ExportPDF godoc
// @Summary Download the printable report as PDF
// @Tags Export
// @Success 200 {file} file
// @Router /export/pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	h.attachment(c, h.exports.ExportPDF)
}

// Import godoc
// @Summary Replace the application state from a JSON snapshot
// @Tags Export
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /import [post]
func (h *ReportHandler) Import(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrImportFailed.Code, appErrors.ErrImportFailed.Status, "snapshot body unreadable"))
		return
	}
	state, err := h.exports.Import(data)
	if err != nil {
		// Existing state stays untouched on parse failure.
		response.Error(c, err)
		return
	}
	h.replacer.Replace(state)
	response.JSON(c, http.StatusOK, h.replacer.State())
}

func (h *ReportHandler) attachment(c *gin.Context, generate func() (*service.ExportResult, error)) {
	result, err := generate()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Data)
}
