package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/celtic-scaffold/audit-api/internal/dto"
	"github.com/celtic-scaffold/audit-api/pkg/response"
)

type accessService interface {
	AttemptUnlock(entered string) error
	SetUnlockCode(pin string)
	Unlocked() bool
}

// AuthHandler exposes the PIN gate.
type AuthHandler struct {
	service accessService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service accessService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Unlock godoc
// @Summary Attempt to unlock the session with a PIN
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.UnlockRequest true "PIN payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/unlock [post]
func (h *AuthHandler) Unlock(c *gin.Context) {
	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	if err := h.service.AttemptUnlock(req.PIN); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UnlockResponse{Unlocked: true})
}

// GetStatus godoc
// @Summary Current gate state
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/status [get]
func (h *AuthHandler) GetStatus(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.UnlockResponse{Unlocked: h.service.Unlocked()})
}

// SetPIN godoc
// @Summary Replace the unlock code
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.SetPINRequest true "New PIN"
// @Success 200 {object} response.Envelope
// @Router /session/pin [put]
func (h *AuthHandler) SetPIN(c *gin.Context) {
	var req dto.SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	h.service.SetUnlockCode(req.PIN)
	response.JSON(c, http.StatusOK, dto.UnlockResponse{Unlocked: h.service.Unlocked()})
}
