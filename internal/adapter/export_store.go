package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/parcel/internal/model"
)

// ExportStore receives exported documents, the CLI counterpart of a browser
// download.
type ExportStore interface {
	WriteExport(name string, data []byte) (m.Path, error)
}

// LocalExportStore writes exports into a directory.
type LocalExportStore struct {
	dir m.Path
}

// NewLocalExportStore creates a store writing into dir.
func NewLocalExportStore(dir m.Path) *LocalExportStore {
	if dir == "" {
		dir = "."
	}

	return &LocalExportStore{dir: dir}
}

// WriteExport writes data to dir/name and returns the full path.
func (s *LocalExportStore) WriteExport(name string, data []byte) (m.Path, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid export file name %q", name)
	}

	if err := os.MkdirAll(string(s.dir), 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", s.dir, err)
	}

	path := filepath.Join(string(s.dir), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}

	return m.Path(path), nil
}
