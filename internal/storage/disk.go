package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore writes blobs into a flat directory and builds public URLs from a
// configured base. Object names are "<unix-millis>-<random-hex><ext>", so two
// uploads of the same file never collide.
type DiskStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// NewDiskStore creates the upload directory if needed and returns a store
// serving files under baseURL + "/uploads/".
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage.NewDiskStore: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

// Dir returns the directory blobs are written into, for wiring the file server.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save streams r into a newly named file and returns its public URL.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("storage.DiskStore.Save: %w", err)
	}

	name := s.objectName(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage.DiskStore.Save: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("storage.DiskStore.Save: write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage.DiskStore.Save: close: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// objectName builds a collision-resistant name: upload timestamp, a random
// suffix, and the original file's extension (lowercased).
func (s *DiskStore) objectName(originalName string) string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)

	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), hex.EncodeToString(suffix), ext)
}
