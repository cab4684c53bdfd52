package shortcut

import (
	"os"
	"path/filepath"
	"strings"
)

// PackageMeta is the read-only slice of package metadata the resolution pass
// infers from: the long description, the classifier strings, and the search
// keywords.
type PackageMeta struct {
	Description string
	Classifiers []string
	Keywords    []string
}

// Resolver fills the missing fields of a shortcut record from package
// metadata and the package data directory.
type Resolver struct {
	Registry *Registry
	Meta     PackageMeta
	// DataDir is scanned for icon files stem-matching the shortcut name.
	// A missing data directory is not an error; the icon stays empty.
	DataDir string
	// IconExts whitelists icon file extensions for the target platform,
	// each with a leading dot.
	IconExts []string
}

// Resolve returns the authoritative record for script: the declared record
// when one exists, a bare one otherwise, with empty fields back-filled from
// package metadata. The registered record is never mutated, so resolving the
// same script twice yields identical results.
func (r *Resolver) Resolve(script string) *Shortcut {
	rec := &Shortcut{Script: script}
	if declared, ok := r.Registry.Lookup(script); ok {
		rec = declared.Clone()
	}

	if rec.Name == "" {
		rec.Name = rec.Script
	}
	if rec.GenericName == "" {
		rec.GenericName = rec.Name
	}

	if len(rec.Icon) == 0 {
		rec.Icon = r.findIcons(rec.Name)
	} else {
		rec.Icon = keepExisting(rec.Icon)
	}

	if rec.Description == "" {
		rec.Description = r.Meta.Description
	}

	if rec.Category == "" {
		rec.Category = categoryFromClassifiers(r.Meta.Classifiers)
	}

	if len(rec.Keywords) == 0 {
		rec.Keywords = append([]string(nil), r.Meta.Keywords...)
	}

	return rec
}

// findIcons globs the data directory for files stem-matching name with a
// whitelisted extension. Filesystem failures count as "no icons".
func (r *Resolver) findIcons(name string) []string {
	if info, err := os.Stat(r.DataDir); err != nil || !info.IsDir() {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(r.DataDir, name+".*"))
	if err != nil {
		return nil
	}
	var icons []string
	for _, m := range matches {
		if hasExt(m, r.IconExts) {
			icons = append(icons, m)
		}
	}
	return icons
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// keepExisting drops icon paths that no longer exist on disk.
func keepExisting(icons []string) []string {
	var kept []string
	for _, ic := range icons {
		if _, err := os.Stat(ic); err == nil {
			kept = append(kept, ic)
		}
	}
	return kept
}

// categoryFromClassifiers scans classifier strings split on "::" and, for
// the first classifier rooted at "Topic", returns the first segment that is
// a valid Free Desktop category. Returns "" on no match.
func categoryFromClassifiers(classifiers []string) string {
	for _, cf := range classifiers {
		segments := strings.Split(cf, "::")
		for i, seg := range segments {
			segments[i] = strings.TrimSpace(seg)
		}
		if len(segments) == 0 || segments[0] != "Topic" {
			continue
		}
		for _, seg := range segments {
			if ValidCategory(seg) {
				return seg
			}
		}
	}
	return ""
}
