package shortcut

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Categories are the Free Desktop main categories accepted for the
// Categories= key of a desktop entry.
var Categories = []string{
	"AudioVideo", "Audio", "Video", "Development",
	"Education", "Game", "Graphics", "Network",
	"Office", "Settings", "System", "Utility",
}

// Special argument names and their desktop-entry field codes. A command line
// may contain at most one %f, %u, %F or %U field code.
var specialArgCodes = map[string]string{
	"SINGLE_FILE": "%f",
	"FILES_LIST":  "%F",
	"SINGLE_URL":  "%u",
	"URLS_LIST":   "%U",
}

// SpecialArgs lists the accepted special-argument names in declaration order.
var SpecialArgs = []string{"SINGLE_FILE", "FILES_LIST", "SINGLE_URL", "URLS_LIST"}

// splitPattern tokenizes flexible string input: commas (with optional
// trailing whitespace) or runs of whitespace.
var splitPattern = regexp.MustCompile(`,\s*|\s+`)

// StringList accepts either a YAML scalar or a YAML sequence. A scalar is
// split into tokens on commas or whitespace.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = Split(s)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}

// Split tokenizes a string on commas (optionally followed by whitespace) or
// runs of whitespace. An empty or all-whitespace input yields no tokens.
func Split(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return splitPattern.Split(s, -1)
}

// Shortcut is the normalized metadata record for one entry point. Construct
// it with New; a Shortcut obtained from New never holds an invalid category,
// special argument, or icon path.
type Shortcut struct {
	Script      string
	Name        string
	GenericName string
	Description string
	Icon        []string
	Arguments   []string
	SpecialArg  string
	Category    string
	Keywords    []string
	MimeType    []string
	Terminal    bool
}

// Options carries the optional fields accepted by New.
type Options struct {
	Name        string
	GenericName string
	Description string
	Icon        StringList
	Arguments   StringList
	SpecialArg  string
	Category    string
	Keywords    StringList
	MimeType    StringList
	Terminal    bool
}

// New builds a validated Shortcut for the given script. baseDir is the
// package root; every icon path must resolve beneath it. Validation is
// atomic: on any invalid field New returns an error and no record.
func New(script, baseDir string, opts Options) (*Shortcut, error) {
	if opts.Category != "" && !ValidCategory(opts.Category) {
		return nil, fmt.Errorf("shortcut %q: category %q is not one of %s",
			script, opts.Category, strings.Join(Categories, ", "))
	}
	if opts.SpecialArg != "" {
		if _, ok := specialArgCodes[opts.SpecialArg]; !ok {
			return nil, fmt.Errorf("shortcut %q: special_arg %q is not one of %s",
				script, opts.SpecialArg, strings.Join(SpecialArgs, ", "))
		}
	}

	icons := make([]string, 0, len(opts.Icon))
	for _, ic := range opts.Icon {
		resolved, err := resolveUnder(baseDir, ic)
		if err != nil {
			return nil, fmt.Errorf("shortcut %q: %w", script, err)
		}
		icons = append(icons, resolved)
	}

	return &Shortcut{
		Script:      script,
		Name:        opts.Name,
		GenericName: opts.GenericName,
		Description: opts.Description,
		Icon:        icons,
		Arguments:   append([]string(nil), opts.Arguments...),
		SpecialArg:  opts.SpecialArg,
		Category:    opts.Category,
		Keywords:    append([]string(nil), opts.Keywords...),
		MimeType:    append([]string(nil), opts.MimeType...),
		Terminal:    opts.Terminal,
	}, nil
}

// resolveUnder resolves path relative to baseDir and rejects paths that
// escape it.
func resolveUnder(baseDir, path string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory %s: %w", baseDir, err)
	}

	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("icon %s is not inside the package directory %s", path, base)
	}
	return p, nil
}

// ValidCategory reports whether c is a Free Desktop main category.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// FieldCode returns the desktop-entry field code for the record's special
// argument ("%f", "%F", "%u" or "%U"), or "" when none is set.
func (s *Shortcut) FieldCode() string {
	return specialArgCodes[s.SpecialArg]
}

// Equal reports whether two records share the same display name. Kept for
// display-name collision detection; records are identified by Script.
func (s *Shortcut) Equal(other *Shortcut) bool {
	return other != nil && s.Name == other.Name
}

// Clone returns a deep copy of the record.
func (s *Shortcut) Clone() *Shortcut {
	c := *s
	c.Icon = append([]string(nil), s.Icon...)
	c.Arguments = append([]string(nil), s.Arguments...)
	c.Keywords = append([]string(nil), s.Keywords...)
	c.MimeType = append([]string(nil), s.MimeType...)
	return &c
}

func (s *Shortcut) String() string {
	return fmt.Sprintf("Shortcut %s for script %s", s.Name, s.Script)
}
