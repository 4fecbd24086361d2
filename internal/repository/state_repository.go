package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/celtic-scaffold/audit-api/internal/models"
)

// FileStateRepository mirrors the full audit state to a single JSON
// document on local disk. Every save is a whole-snapshot replacement;
// there are no partial writes.
type FileStateRepository struct {
	path       string
	defaultPIN string
	logger     *zap.Logger
}

// NewFileStateRepository builds a repository writing to path.
func NewFileStateRepository(path, defaultPIN string, logger *zap.Logger) *FileStateRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStateRepository{path: path, defaultPIN: defaultPIN, logger: logger}
}

// Load reads the persisted snapshot. A missing or unparseable file is
// never fatal: startup falls back to the default state silently.
func (r *FileStateRepository) Load() *models.AuditState {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("state snapshot unreadable, starting from defaults", zap.Error(err))
		}
		return models.DefaultState(r.defaultPIN)
	}

	state := &models.AuditState{}
	if err := json.Unmarshal(data, state); err != nil {
		r.logger.Warn("state snapshot corrupt, starting from defaults", zap.Error(err))
		return models.DefaultState(r.defaultPIN)
	}
	state.Normalize()
	return state
}

// Save serializes the state and replaces the snapshot on disk.
func (r *FileStateRepository) Save(state *models.AuditState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("prepare state directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	return nil
}

// Path returns the snapshot location.
func (r *FileStateRepository) Path() string {
	return r.path
}
