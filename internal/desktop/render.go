package desktop

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/unishort-labs/unishort/internal/shortcut"
)

// ErrUnsupported marks platforms whose descriptor format has no renderer yet.
var ErrUnsupported = errors.New("shortcut format not supported")

//go:embed templates/entry.desktop.tmpl
var desktopForm string

var (
	desktopTmpl     *template.Template
	desktopTmplOnce sync.Once
	desktopTmplErr  error
)

// Renderer turns a resolved shortcut record into descriptor file contents.
type Renderer interface {
	// Render produces the descriptor bytes for one record.
	Render(rec *shortcut.Shortcut) ([]byte, error)
	// FileName returns the descriptor file name for one record.
	FileName(rec *shortcut.Shortcut) string
}

// ForPlatform returns the renderer for a platform tag.
func ForPlatform(p Platform) Renderer {
	if p == Linux {
		return linuxRenderer{}
	}
	return stubRenderer{platform: p}
}

// linuxRenderer emits Free Desktop .desktop entries.
type linuxRenderer struct{}

// entryData holds the resolved template fields for one desktop entry.
type entryData struct {
	Name        string
	GenericName string
	Comment     string
	Categories  string
	Keywords    string
	MimeType    string
	Icon        string
	Exec        string
	TryExec     string
	Terminal    string
}

func (linuxRenderer) Render(rec *shortcut.Shortcut) ([]byte, error) {
	desktopTmplOnce.Do(func() {
		desktopTmpl, desktopTmplErr = template.New("desktop").Parse(desktopForm)
	})
	if desktopTmplErr != nil {
		return nil, fmt.Errorf("parsing desktop entry template: %w", desktopTmplErr)
	}

	data := entryData{
		Name:        rec.Name,
		GenericName: rec.GenericName,
		Comment:     rec.Description,
		Categories:  semicolonList([]string{rec.Category}),
		Keywords:    semicolonList(rec.Keywords),
		MimeType:    semicolonList(rec.MimeType),
		Icon:        firstIcon(rec),
		Exec:        execLine(rec),
		TryExec:     rec.Script,
		Terminal:    fmt.Sprintf("%t", rec.Terminal),
	}

	var buf bytes.Buffer
	if err := desktopTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering desktop entry for %s: %w", rec.Script, err)
	}
	return buf.Bytes(), nil
}

func (linuxRenderer) FileName(rec *shortcut.Shortcut) string {
	return rec.Script + ".desktop"
}

// execLine assembles the Exec= value: the script, its arguments, and at most
// one special-argument field code.
func execLine(rec *shortcut.Shortcut) string {
	parts := []string{rec.Script}
	parts = append(parts, rec.Arguments...)
	if code := rec.FieldCode(); code != "" {
		parts = append(parts, code)
	}
	return strings.Join(parts, " ")
}

// semicolonList renders a desktop-entry list value: items joined and
// terminated by semicolons, empty when there are no items.
func semicolonList(items []string) string {
	var b strings.Builder
	for _, it := range items {
		if it == "" {
			continue
		}
		b.WriteString(it)
		b.WriteString(";")
	}
	return b.String()
}

func firstIcon(rec *shortcut.Shortcut) string {
	if len(rec.Icon) == 0 {
		return ""
	}
	return rec.Icon[0]
}

// stubRenderer stands in for platforms without a descriptor format yet.
type stubRenderer struct {
	platform Platform
}

func (r stubRenderer) Render(rec *shortcut.Shortcut) ([]byte, error) {
	return nil, fmt.Errorf("rendering %s shortcut for %s: %w", r.platform, rec.Script, ErrUnsupported)
}

func (r stubRenderer) FileName(rec *shortcut.Shortcut) string {
	if r.platform == Windows {
		return rec.Script + ".lnk"
	}
	return rec.Script + ".app"
}
