// internal/assets/store.go
package assets

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"brick-breaker-assets/pkg/render"

	"github.com/sirupsen/logrus"
)

// Store пишет готовые холсты в PNG-файлы внутри одной директории.
type Store struct {
	dir    string
	logger logrus.FieldLogger
}

// NewStore создает хранилище для директории dir.
func NewStore(dir string, logger logrus.FieldLogger) *Store {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		logger = l
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// Path returns where an asset called name is written.
func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }

// EnsureDir creates the output directory. Existing directories are fine.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}
	return nil
}

// Save encodes c as PNG and writes it to name. The file is written to a
// temporary sibling first and renamed, so a failed save never leaves a
// truncated asset behind.
func (s *Store) Save(name string, c *render.Canvas) (string, error) {
	path := s.Path(name)

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(tmp, c.Image()); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	info, err := tmp.Stat()
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to stat %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":   path,
		"width":  c.Width(),
		"height": c.Height(),
		"opaque": c.Opaque(),
		"bytes":  info.Size(),
	}).Debug("asset written")
	return path, nil
}
