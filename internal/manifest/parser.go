package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// DefaultFileName is the manifest file name looked up next to the package
// sources when no --manifest flag is given.
const DefaultFileName = "package.yaml"

// Parse unmarshals manifest YAML and checks the fields the schema cannot:
// the version must parse as semver and every entry point must carry a
// command name.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if m.Version != "" {
		if _, err := parseSemver(m.Version); err != nil {
			return nil, fmt.Errorf("manifest version %q is not a semantic version: %w", m.Version, err)
		}
	}

	if _, err := m.Commands(); err != nil {
		return nil, err
	}

	return &m, nil
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
