//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testPackage holds the paths of a synthetic package directory.
type testPackage struct {
	Dir          string // package root, contains package.yaml and data/
	ManifestPath string
	DataDir      string
	OutputDir    string
}

// setupPackage creates an isolated package directory with a manifest, a
// data/ directory holding the named icon files, and an output directory.
func setupPackage(t *testing.T, manifestYAML string, iconFiles ...string) *testPackage {
	t.Helper()

	dir := t.TempDir()
	pkg := &testPackage{
		Dir:          dir,
		ManifestPath: filepath.Join(dir, "package.yaml"),
		DataDir:      filepath.Join(dir, "data"),
		OutputDir:    filepath.Join(t.TempDir(), "build"),
	}

	writeFile(t, pkg.ManifestPath, manifestYAML)

	if len(iconFiles) > 0 {
		if err := os.MkdirAll(pkg.DataDir, 0755); err != nil {
			t.Fatalf("creating data dir: %v", err)
		}
		for _, name := range iconFiles {
			writeFile(t, filepath.Join(pkg.DataDir, name), "icon-bytes")
		}
	}

	return pkg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

func assertContainsLine(t *testing.T, content, line string) {
	t.Helper()
	if !strings.Contains(content, line+"\n") {
		t.Errorf("expected line %q in:\n%s", line, content)
	}
}
