package dto

import "github.com/celtic-scaffold/audit-api/internal/models"

// SetAnswerRequest selects a verdict for one checklist item.
type SetAnswerRequest struct {
	Ans string `json:"ans" binding:"required,oneof=Yes No N/A"`
}

// SetNotesRequest replaces the notes of one checklist item. Empty notes
// are valid (clearing is a replacement, not a delete).
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// AddPhotoRequest appends one inline-encoded photo (data URL).
type AddPhotoRequest struct {
	Data string `json:"data" binding:"required"`
}

// UpdateSessionRequest patches cover-sheet fields. Only fields present
// in the payload are replaced; no format validation is applied to any
// of them, the stored value is the submitted string verbatim.
type UpdateSessionRequest struct {
	Project    *string `json:"project"`
	Location   *string `json:"location"`
	GA3        *string `json:"ga3"`
	Inspector  *string `json:"inspector"`
	Date       *string `json:"date"`
	Weather    *string `json:"weather"`
	ScaffoldID *string `json:"scaffoldId"`
}

// SetPINRequest replaces the unlock code. Takes effect immediately and
// does not re-lock the current session.
type SetPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// UnlockRequest carries an unlock attempt. The PIN is compared exactly
// as submitted, so an empty string is a legal (failing) attempt.
type UnlockRequest struct {
	PIN string `json:"pin"`
}

// UnlockResponse reports the gate state after an attempt.
type UnlockResponse struct {
	Unlocked bool `json:"unlocked"`
}

// ProgressResponse is the answered/total progress pair.
type ProgressResponse struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// CatalogResponse lists the checklist items and their section order.
type CatalogResponse struct {
	Items    []models.ChecklistItem `json:"items"`
	Sections []string               `json:"sections"`
}
