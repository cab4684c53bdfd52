package manifest

import (
	"fmt"
	"strings"

	"github.com/unishort-labs/unishort/internal/shortcut"
)

// Manifest mirrors the package metadata a build system holds for one
// distribution, plus the author-declared shortcut overrides.
type Manifest struct {
	Name        string              `yaml:"name" json:"name"`
	Version     string              `yaml:"version,omitempty" json:"version,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Keywords    shortcut.StringList `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Classifiers []string            `yaml:"classifiers,omitempty" json:"classifiers,omitempty"`
	EntryPoints EntryPoints         `yaml:"entry_points,omitempty" json:"entry_points,omitempty"`
	Shortcuts   []ShortcutDecl      `yaml:"shortcuts,omitempty" json:"shortcuts,omitempty"`
}

// EntryPoints groups entry-point declarations by group name.
type EntryPoints struct {
	ConsoleScripts []EntryPoint `yaml:"console_scripts,omitempty" json:"console_scripts,omitempty"`
	GUIScripts     []EntryPoint `yaml:"gui_scripts,omitempty" json:"gui_scripts,omitempty"`
}

// EntryPoint is a "name = module:function" declaration. Only the name
// before "=" is consumed here; the target is the host build system's
// business.
type EntryPoint string

// Command returns the command name declared before "=".
func (e EntryPoint) Command() (string, error) {
	name, _, found := strings.Cut(string(e), "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", fmt.Errorf("malformed entry point %q: want \"name = module:function\"", string(e))
	}
	return name, nil
}

// ShortcutDecl is one author-declared shortcut override as it appears in
// the manifest. It is converted into a validated shortcut record by
// Manifest.Registry.
type ShortcutDecl struct {
	Script      string              `yaml:"script" json:"script"`
	Name        string              `yaml:"name,omitempty" json:"name,omitempty"`
	GenericName string              `yaml:"generic_name,omitempty" json:"generic_name,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Icon        shortcut.StringList `yaml:"icon,omitempty" json:"icon,omitempty"`
	Arguments   shortcut.StringList `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	SpecialArg  string              `yaml:"special_arg,omitempty" json:"special_arg,omitempty"`
	Category    string              `yaml:"category,omitempty" json:"category,omitempty"`
	Keywords    shortcut.StringList `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	MimeType    shortcut.StringList `yaml:"mime_type,omitempty" json:"mime_type,omitempty"`
	Terminal    bool                `yaml:"terminal,omitempty" json:"terminal,omitempty"`
}

// Commands returns the console entry-point command names in declaration
// order.
func (m *Manifest) Commands() ([]string, error) {
	var commands []string
	for _, ep := range m.EntryPoints.ConsoleScripts {
		cmd, err := ep.Command()
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// Meta returns the read-only package metadata slice the resolver infers
// from.
func (m *Manifest) Meta() shortcut.PackageMeta {
	return shortcut.PackageMeta{
		Description: m.Description,
		Classifiers: append([]string(nil), m.Classifiers...),
		Keywords:    append([]string(nil), m.Keywords...),
	}
}

// Registry converts the declared shortcuts into validated records collected
// in a fresh registry. baseDir is the package root used for icon path
// containment, normally the manifest's directory.
func (m *Manifest) Registry(baseDir string) (*shortcut.Registry, error) {
	reg := shortcut.NewRegistry()
	for _, decl := range m.Shortcuts {
		rec, err := shortcut.New(decl.Script, baseDir, shortcut.Options{
			Name:        decl.Name,
			GenericName: decl.GenericName,
			Description: decl.Description,
			Icon:        decl.Icon,
			Arguments:   decl.Arguments,
			SpecialArg:  decl.SpecialArg,
			Category:    decl.Category,
			Keywords:    decl.Keywords,
			MimeType:    decl.MimeType,
			Terminal:    decl.Terminal,
		})
		if err != nil {
			return nil, err
		}
		if err := reg.Add(rec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
