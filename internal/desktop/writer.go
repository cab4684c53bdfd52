package desktop

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unishort-labs/unishort/internal/platform"
)

// Writer places rendered descriptors into the build output directory.
type Writer struct {
	// Dir is the output directory, created on first write.
	Dir string
}

// Write stores the descriptor under its file name and returns the full path.
// Desktop environments require the entry to be executable before trusting
// it, so the file is marked 0755.
func (w *Writer) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", w.Dir, err)
	}

	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := platform.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("marking %s executable: %w", path, err)
	}
	return path, nil
}
