// Package manifest handles parsing and validation of the package.yaml
// build manifest: package metadata (description, classifiers, keywords),
// entry-point declarations, and optional per-script shortcut overrides.
// Structural validation runs against the embedded JSON Schema.
package manifest
