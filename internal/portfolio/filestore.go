package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/kwangdi/RSEBL-Tracker-Backend/internal/model"
)

// FileStore persists the holding list as a single JSON document: an array
// of holdings, the same shape the original browser build kept under its
// localStorage key.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path. The file is
// created on first save; its directory must be creatable.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted holding list. A missing file is a normal first
// run and a corrupt file is deliberate resilience, both yielding an empty
// list; corruption is logged for diagnostics.
func (s *FileStore) Load() ([]model.Holding, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Holding{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}

	var holdings []model.Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		log.Printf("Portfolio file %s is corrupt, starting empty: %v", s.path, err)
		return []model.Holding{}, nil
	}
	if holdings == nil {
		holdings = []model.Holding{}
	}

	return holdings, nil
}

// Save writes the whole holding list, creating the parent directory if
// needed. The write goes through a temp file and rename so a crash cannot
// leave a half-written document.
func (s *FileStore) Save(holdings []model.Holding) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create portfolio directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(holdings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write portfolio file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace portfolio file: %w", err)
	}

	return nil
}
