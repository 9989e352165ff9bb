package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maebert/bragmaster/internal/bragfile"
	"github.com/maebert/bragmaster/internal/domain"
)

// DocumentStore loads and saves the canonical bragfile. The file is a
// shared mutable resource across process invocations; concurrent
// invocations racing on it are an accepted limitation, so there is no
// locking.
type DocumentStore interface {
	Load(ctx context.Context, path string) (*domain.Document, error)
	Save(ctx context.Context, path string, doc *domain.Document) error
}

type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Load(ctx context.Context, path string) (*domain.Document, error) {
	data, err := os.ReadFile(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("reading bragfile %s: %w", path, err)
	}
	doc, err := bragfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("bragfile %s: %w", path, err)
	}
	return doc, nil
}

// Save serializes the whole document and replaces the file via a temp
// file and rename, so a failed write never truncates the canonical
// file.
func (s *FileStore) Save(ctx context.Context, path string, doc *domain.Document) error {
	path = expandHome(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".brag-*")
	if err != nil {
		return fmt.Errorf("writing bragfile %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(bragfile.Serialize(doc)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing bragfile %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing bragfile %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing bragfile %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing bragfile %s: %w", path, err)
	}
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
