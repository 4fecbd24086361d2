package service

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/celtic-scaffold/audit-api/internal/dto"
	"github.com/celtic-scaffold/audit-api/internal/models"
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
)

// stateGateway mirrors the full state to durable storage. Injected so
// the core stays testable without touching disk.
type stateGateway interface {
	Save(state *models.AuditState) error
}

// AuditService owns the application state and serializes every mutation.
// Each mutation is followed by a full-snapshot write-through before the
// call returns; save failures are logged, never surfaced.
type AuditService struct {
	mu      sync.Mutex
	state   *models.AuditState
	catalog models.Catalog
	gateway stateGateway
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAuditService wires the state owner. initial is typically the result
// of the repository Load; metrics may be nil.
func NewAuditService(catalog models.Catalog, initial *models.AuditState, gateway stateGateway, metrics *MetricsService, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if initial == nil {
		initial = models.DefaultState("")
	}
	initial.Normalize()
	return &AuditService{
		state:   initial,
		catalog: catalog,
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
	}
}

// Catalog returns the immutable checklist.
func (s *AuditService) Catalog() models.Catalog {
	return s.catalog
}

// State returns a deep copy of the current application state.
func (s *AuditService) State() *models.AuditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SetAnswer replaces the choice at idx, creating the record on first
// touch and preserving existing notes and photos.
func (s *AuditService) SetAnswer(idx int, choice models.Choice) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EnsureRecord(idx).Ans = choice
	s.persist("set_answer")
	return nil
}

// SetNotes replaces the notes at idx, creating the record on first touch.
func (s *AuditService) SetNotes(idx int, notes string) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EnsureRecord(idx).Notes = notes
	s.persist("set_notes")
	return nil
}

// AddPhoto appends an inline-encoded photo at idx. Insertion order is
// preserved and duplicates are allowed.
func (s *AuditService) AddPhoto(idx int, data string) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.state.EnsureRecord(idx)
	rec.Photos = append(rec.Photos, data)
	s.persist("add_photo")
	return nil
}

// RemovePhoto deletes the photo at pos. An out-of-range pos is a silent
// no-op: rapid repeated taps in the UI can race an in-flight removal,
// and the second tap must not fail.
func (s *AuditService) RemovePhoto(idx, pos int) error {
	if err := s.checkIndex(idx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.Answers[idx]
	if !ok || pos < 0 || pos >= len(rec.Photos) {
		return nil
	}
	rec.Photos = append(rec.Photos[:pos], rec.Photos[pos+1:]...)
	s.persist("remove_photo")
	return nil
}

// UpdateSession replaces the cover fields present in the request. Values
// are stored verbatim; no format checks apply.
func (s *AuditService) UpdateSession(req dto.UpdateSessionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Project != nil {
		s.state.Project = *req.Project
	}
	if req.Location != nil {
		s.state.Location = *req.Location
	}
	if req.GA3 != nil {
		s.state.GA3 = *req.GA3
	}
	if req.Inspector != nil {
		s.state.Inspector = *req.Inspector
	}
	if req.Date != nil {
		s.state.Date = *req.Date
	}
	if req.Weather != nil {
		s.state.Weather = *req.Weather
	}
	if req.ScaffoldID != nil {
		s.state.ScaffoldID = *req.ScaffoldID
	}
	s.persist("update_session")
}

// Replace swaps in an imported state wholesale. Nothing is merged.
func (s *AuditService) Replace(state *models.AuditState) {
	state.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.persist("import")
}

// Record returns a copy of the record at idx, or an empty placeholder
// when the item has not been touched.
func (s *AuditService) Record(idx int) (models.AnswerRecord, error) {
	if err := s.checkIndex(idx); err != nil {
		return models.AnswerRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.state.Answers[idx]
	if !ok || rec == nil {
		return models.AnswerRecord{Photos: []string{}}, nil
	}
	recCopy := *rec
	recCopy.Photos = append([]string{}, rec.Photos...)
	return recCopy, nil
}

// AnsweredCount recomputes the number of answered items.
func (s *AuditService) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AnsweredCount()
}

// Progress returns answered count and catalog size.
func (s *AuditService) Progress() (answered, total int) {
	return s.AnsweredCount(), len(s.catalog)
}

func (s *AuditService) checkIndex(idx int) error {
	if !s.catalog.InRange(idx) {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("checklist item %d does not exist", idx))
	}
	return nil
}

// persist writes the snapshot through to durable storage. Must be called
// with the mutex held.
func (s *AuditService) persist(kind string) {
	s.metrics.ObserveMutation(kind)
	s.metrics.SetAnsweredItems(s.state.AnsweredCount())
	if s.gateway == nil {
		return
	}
	if err := s.gateway.Save(s.state); err != nil {
		s.logger.Error("state write-through failed", zap.String("mutation", kind), zap.Error(err))
	}
}
