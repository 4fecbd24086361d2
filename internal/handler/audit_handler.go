package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/celtic-scaffold/audit-api/internal/dto"
	"github.com/celtic-scaffold/audit-api/internal/models"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
	"github.com/celtic-scaffold/audit-api/pkg/response"
)

type auditService interface {
	Catalog() models.Catalog
	State() *models.AuditState
	Record(idx int) (models.AnswerRecord, error)
	SetAnswer(idx int, choice models.Choice) error
	SetNotes(idx int, notes string) error
	AddPhoto(idx int, data string) error
	RemovePhoto(idx, pos int) error
	Progress() (answered, total int)
	UpdateSession(req dto.UpdateSessionRequest)
}

// AuditHandler exposes catalog, state and checklist mutation endpoints.
type AuditHandler struct {
	service auditService
}

// NewAuditHandler builds a new handler.
func NewAuditHandler(service auditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetCatalog godoc
// @Summary List checklist items and section order
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *AuditHandler) GetCatalog(c *gin.Context) {
	catalog := h.service.Catalog()
	response.JSON(c, http.StatusOK, dto.CatalogResponse{
		Items:    catalog,
		Sections: catalog.Sections(),
	})
}

// GetState godoc
// @Summary Current application state
// @Tags State
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /state [get]
func (h *AuditHandler) GetState(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.State())
}

// GetProgress godoc
// @Summary Answered / total progress counts
// @Tags State
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /state/progress [get]
func (h *AuditHandler) GetProgress(c *gin.Context) {
	answered, total := h.service.Progress()
	response.JSON(c, http.StatusOK, dto.ProgressResponse{Answered: answered, Total: total})
}

// SetAnswer godoc
// @Summary Set the verdict for one checklist item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param index path int true "Catalog index"
// @Param payload body dto.SetAnswerRequest true "Answer payload"
// @Success 200 {object} response.Envelope
// @Router /items/{index}/answer [put]
func (h *AuditHandler) SetAnswer(c *gin.Context) {
	idx, err := itemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := h.service.SetAnswer(idx, models.Choice(req.Ans)); err != nil {
		response.Error(c, err)
		return
	}
	h.respondRecord(c, idx)
}

// SetNotes godoc
// @Summary Replace the notes for one checklist item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param index path int true "Catalog index"
// @Param payload body dto.SetNotesRequest true "Notes payload"
// @Success 200 {object} response.Envelope
// @Router /items/{index}/notes [put]
func (h *AuditHandler) SetNotes(c *gin.Context) {
	idx, err := itemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := h.service.SetNotes(idx, req.Notes); err != nil {
		response.Error(c, err)
		return
	}
	h.respondRecord(c, idx)
}

// AddPhoto godoc
// @Summary Append an inline-encoded photo to one checklist item
// @Tags Checklist
// @Accept json
// @Produce json
// @Param index path int true "Catalog index"
// @Param payload body dto.AddPhotoRequest true "Photo payload"
// @Success 201 {object} response.Envelope
// @Router /items/{index}/photos [post]
func (h *AuditHandler) AddPhoto(c *gin.Context) {
	idx, err := itemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := h.service.AddPhoto(idx, req.Data); err != nil {
		response.Error(c, err)
		return
	}
	rec, err := h.service.Record(idx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, rec)
}

// RemovePhoto godoc
// @Summary Remove the photo at a position
// @Tags Checklist
// @Param index path int true "Catalog index"
// @Param position path int true "Photo position"
// @Success 204
// @Router /items/{index}/photos/{position} [delete]
func (h *AuditHandler) RemovePhoto(c *gin.Context) {
	idx, err := itemIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	pos, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "photo position must be an integer"))
		return
	}
	// Out-of-range positions are a silent no-op, still 204.
	if err := h.service.RemovePhoto(idx, pos); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateSession godoc
// @Summary Patch cover-sheet fields
// @Tags Session
// @Accept json
// @Produce json
// @Param payload body dto.UpdateSessionRequest true "Cover fields"
// @Success 200 {object} response.Envelope
// @Router /session [put]
func (h *AuditHandler) UpdateSession(c *gin.Context) {
	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	h.service.UpdateSession(req)
	response.JSON(c, http.StatusOK, h.service.State())
}

func (h *AuditHandler) respondRecord(c *gin.Context, idx int) {
	rec, err := h.service.Record(idx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rec)
}

func itemIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "item index must be an integer")
	}
	return idx, nil
}
