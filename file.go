package zipstore

import (
	"fmt"
	"os"
)

// Create builds an archive writer on a new file at path, truncating any
// existing file there. Unlike New, the returned writer owns the handle:
// Close closes it.
func Create(path string, opts ...Option) (*Writer, error) {
	f, err := os.Create(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("create archive file: %w", err)
	}
	w := New(f, opts...)
	w.file = f
	return w, nil
}
