package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var ErrInvalidSinkName = errors.New("export sink name must be a plain file name")

// FileSink creates export files inside a single directory.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{
		dir: dir,
	}
}

func (s *FileSink) Open(name string) (io.WriteCloser, error) {
	if len(name) == 0 || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSinkName, name)
	}

	err := os.MkdirAll(s.dir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("error while creating export directory %s: %w", s.dir, err)
	}

	file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("error while opening export file %s: %w", name, err)
	}

	return file, nil
}
