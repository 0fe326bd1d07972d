package filestore

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

// Store persists uploaded files and returns stable references for them.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// DiskStore keeps files in a local directory. References are file names
// relative to the directory, so they stay valid across restarts.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the contents of r under a generated unique name and returns
// that name. The original name only contributes its extension.
func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var suffix [8]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(name))
	stored := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix[:]), ext)

	f, err := os.OpenFile(filepath.Join(s.dir, stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return stored, nil
}

// Dir returns the directory files are stored in.
func (s *DiskStore) Dir() string {
	return s.dir
}
