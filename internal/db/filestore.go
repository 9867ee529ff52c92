package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// FileStore keeps all transcripts in a single JSON array file. The file is
// read in full and rewritten in full on every append, which is fine at
// classroom volume. A mutex serializes writers within this process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a FileStore at path, creating parent directories
// as needed. The file itself is created lazily on first append.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = "transcripts.json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("transcript dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() ([]pkg.Transcript, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var all []pkg.Transcript
	if len(data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return all, nil
}

func (s *FileStore) save(all []pkg.Transcript) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Append assigns an id and timestamp, adds the record to the end of the
// file, and returns the new id.
func (s *FileStore) Append(ctx context.Context, t pkg.Transcript) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return "", err
	}
	t.ID = uuid.NewString()
	t.SavedAt = time.Now()
	all = append(all, t)
	if err := s.save(all); err != nil {
		return "", err
	}
	return t.ID, nil
}

// List returns one summary per saved transcript, in save order.
func (s *FileStore) List(ctx context.Context) ([]pkg.TranscriptSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]pkg.TranscriptSummary, 0, len(all))
	for _, t := range all {
		out = append(out, pkg.TranscriptSummary{
			ID:       t.ID,
			Student:  t.Student,
			Scenario: t.Scenario,
			SavedAt:  t.SavedAt,
		})
	}
	return out, nil
}

// Get returns the full record for id, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, id string) (pkg.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return pkg.Transcript{}, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return pkg.Transcript{}, ErrNotFound
}
