package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/suffixlens/pkg/errors"
)

// FileStore is a file-based analysis store for the CLI.
// Each analysis is stored as <id>.bson in a data directory. Records use the
// same BSON layout as [MongoStore] so graph labels that split a multi-byte
// character survive the round trip.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.local/share/suffixlens/history/
// (or $XDG_DATA_HOME/suffixlens/history/).
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// DefaultDir returns the default history directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "suffixlens", "history"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "suffixlens", "history"), nil
}

const recordExt = ".bson"

func (s *FileStore) path(id string) string {
	return filepath.Join(s.baseDir, id+recordExt)
}

func (s *FileStore) Save(_ context.Context, a *Analysis) error {
	if err := ValidateID(a.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := bson.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(s.path(a.ID), data, 0600); err != nil {
		return fmt.Errorf("write analysis file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, id string) (*Analysis, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, err := readAnalysis(s.path(id))
	if os.IsNotExist(err) {
		return nil, notFound(id)
	}
	return a, err
}

// List reads every record in the directory. Unreadable files are skipped.
func (s *FileStore) List(_ context.Context, limit int) ([]*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	out := make([]*Analysis, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != recordExt {
			continue
		}
		if ValidateID(strings.TrimSuffix(name, recordExt)) != nil {
			continue
		}
		a, err := readAnalysis(filepath.Join(s.baseDir, name))
		if err != nil {
			continue
		}
		out = append(out, a.Summary())
	}

	sortNewestFirst(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return notFound(id)
		}
		return fmt.Errorf("remove analysis file: %w", err)
	}
	return nil
}

func (s *FileStore) Close(context.Context) error { return nil }

// Path returns the base directory for analysis files.
func (s *FileStore) Path() string {
	return s.baseDir
}

func readAnalysis(path string) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Analysis
	if err := bson.Unmarshal(data, &a); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse %s", filepath.Base(path))
	}
	return &a, nil
}

var _ Store = (*FileStore)(nil)
