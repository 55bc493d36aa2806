package photostore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Store persists box photos on disk. Filenames are generated UUIDs so user
// supplied names never touch the filesystem; callers keep the returned
// reference in the box record.
type Store struct {
	dir string
}

// NewStore creates the photo directory if needed and returns a store over it
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the photo content to a new file and returns its reference.
// The extension is taken from the original filename; unknown extensions
// fall back to .jpg.
func (s *Store) Save(content io.Reader, originalName string) (string, error) {
	ref := uuid.New().String() + normalizeExt(originalName)
	path := filepath.Join(s.dir, ref)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		// Remove the partial file; the reference was never handed out
		os.Remove(path)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	log.WithField("ref", ref).Debug("Stored box photo")
	return ref, nil
}

// Open returns the photo content for a stored reference
func (s *Store) Open(ref string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil {
		return nil, fmt.Errorf("failed to open photo %s: %w", ref, err)
	}
	return f, nil
}

// Exists reports whether a stored reference still resolves to a file
func (s *Store) Exists(ref string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(ref)))
	return err == nil
}

// Remove deletes a stored photo. Removing a missing reference is a no-op.
func (s *Store) Remove(ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo %s: %w", ref, err)
	}
	return nil
}

func normalizeExt(name string) string {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".jpg"
	}
}
