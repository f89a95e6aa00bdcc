package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/ar-fit/internal/logger"
)

// FileSink writes the export into a directory. An explicit Path overrides
// the directory and name entirely.
type FileSink struct {
	Dir  string
	Path string

	logger *logger.Logger
}

func NewFileSink(dir string, logger *logger.Logger) *FileSink {
	return &FileSink{Dir: dir, logger: logger}
}

// NewFilePathSink writes to exactly path.
func NewFilePathSink(path string, logger *logger.Logger) *FileSink {
	return &FileSink{Path: path, logger: logger}
}

func (f *FileSink) Put(_ context.Context, name string, data []byte) (string, error) {
	path := f.Path
	if path == "" {
		if name == "" || filepath.Base(name) != name {
			return "", fmt.Errorf("%w: bad file name %q", ErrInvalidDestination, name)
		}
		path = filepath.Join(f.Dir, name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	// write next to the target, then rename
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("chmod export file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move export file: %w", err)
	}

	f.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("export written")
	return path, nil
}
