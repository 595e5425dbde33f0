package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prashikshan/prashikshan-cli/internal/models"
)

type document struct {
	Version int                        `json:"version"`
	Drafts  []models.LogbookDraft      `json:"drafts"`
	Session *models.Session            `json:"session,omitempty"`
	Extra   map[string]json.RawMessage `json:"extra,omitempty"`
}

// JSONStore persists the whole client document as one JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{Version: 1, Drafts: []models.LogbookDraft{}}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run after init-less invocation: start empty rather
			// than forcing an explicit init for a read-only command.
			s.doc = &document{Version: 1, Drafts: []models.LogbookDraft{}}
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// Back up the corrupt file and start over instead of wedging
		// every command behind a parse error.
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		s.doc = &document{Version: 1, Drafts: []models.LogbookDraft{}}
		return fmt.Errorf("corrupt storage in %s (backed up to %s): %w", s.path, backupPath, err)
	}

	if s.doc.Drafts == nil {
		s.doc.Drafts = []models.LogbookDraft{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the document atomically: marshal, write a temp file next
// to the target, then rename over it. A crash mid-write leaves the old
// document intact.
func (s *JSONStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) LoadDrafts() ([]models.LogbookDraft, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	drafts := make([]models.LogbookDraft, len(s.doc.Drafts))
	copy(drafts, s.doc.Drafts)
	return drafts, nil
}

func (s *JSONStore) SaveDrafts(drafts []models.LogbookDraft) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	dup := make([]models.LogbookDraft, len(drafts))
	copy(dup, drafts)
	s.doc.Drafts = dup
	return s.save()
}

func (s *JSONStore) LoadSession() (models.Session, error) {
	if s.doc == nil {
		return models.Session{}, fmt.Errorf("storage not loaded")
	}
	if s.doc.Session == nil {
		return models.Session{}, ErrNoSession
	}
	return *s.doc.Session, nil
}

func (s *JSONStore) SaveSession(session models.Session) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Session = &session
	return s.save()
}

func (s *JSONStore) ClearSession() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Session = nil
	return s.save()
}

func (s *JSONStore) GetDataPath() string {
	return s.path
}
