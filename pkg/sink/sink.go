package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

type implSink struct {
	dir string
}

// New creates a Sink that writes artifacts into dir, creating it on
// first write if needed.
func New(dir string) Sink {
	return &implSink{dir: dir}
}

// WriteFile persists data under the sink directory. Content is written
// verbatim, so UTF-8 text survives byte-for-byte.
func (s *implSink) WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := s.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

// Path returns the destination path for a named artifact.
func (s *implSink) Path(name string) string {
	return filepath.Join(s.dir, name)
}
