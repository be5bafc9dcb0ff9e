package source

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// outputPerm is applied to every written document.
const outputPerm = 0644

// FileStore loads and writes line sequences on an afero filesystem.
type FileStore struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewFileStore returns a FileStore over fs. A nil fs means the OS
// filesystem and a nil logger discards output.
func NewFileStore(fs afero.Fs, logger *zap.Logger) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{fs: fs, logger: logger}
}

// LoadLines reads the whole file at path and splits it with SplitLines.
func (s *FileStore) LoadLines(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	if LooksBinary(data) {
		s.logger.Warn("Input looks like binary content", zap.String("path", path))
	}

	lines := SplitLines(string(data))
	s.logger.Debug("Loaded document",
		zap.String("path", path),
		zap.Int("sizeBytes", len(data)),
		zap.Int("lines", len(lines)))
	return lines, nil
}

// WriteLines replaces the file at path with the concatenated lines. The
// content goes to a temporary file in the same directory first and is
// renamed over path, so readers never observe a partial document. The
// parent directory must already exist.
func (s *FileStore) WriteLines(path string, lines []string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := s.fs.Remove(tmpName); rmErr != nil {
				s.logger.Warn("Failed to remove temporary file", zap.String("path", tmpName), zap.Error(rmErr))
			}
		}
	}()

	data := JoinLines(lines)
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err = s.fs.Chmod(tmpName, outputPerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err = s.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", tmpName, path, err)
	}

	s.logger.Debug("Wrote document",
		zap.String("path", path),
		zap.Int("sizeBytes", len(data)),
		zap.Int("lines", len(lines)))
	return nil
}
