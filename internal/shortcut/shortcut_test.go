package shortcut

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comma separated", "a,b,c", []string{"a", "b", "c"}},
		{"comma with trailing space", "a, b,  c", []string{"a", "b", "c"}},
		{"whitespace separated", "a b\tc", []string{"a", "b", "c"}},
		{"mixed", "one, two three", []string{"one", "two", "three"}},
		{"single token", "solo", []string{"solo"}},
		{"empty", "", nil},
		{"only whitespace", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringListUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want StringList
	}{
		{"sequence", "[alpha, beta]", StringList{"alpha", "beta"}},
		{"scalar with commas", `"alpha, beta"`, StringList{"alpha", "beta"}},
		{"scalar with spaces", `"alpha beta"`, StringList{"alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := yaml.Unmarshal([]byte(tt.yaml), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.yaml, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("mapping rejected", func(t *testing.T) {
		var got StringList
		if err := yaml.Unmarshal([]byte("key: value"), &got); err == nil {
			t.Error("expected error for mapping input, got nil")
		}
	})
}

func TestNewValidCategories(t *testing.T) {
	base := t.TempDir()
	for _, cat := range Categories {
		rec, err := New("app", base, Options{Category: cat})
		if err != nil {
			t.Errorf("New with category %q: %v", cat, err)
			continue
		}
		if rec.Category != cat {
			t.Errorf("Category = %q, want %q", rec.Category, cat)
		}
	}
}

func TestNewInvalidCategory(t *testing.T) {
	base := t.TempDir()
	_, err := New("app", base, Options{Category: "Multimedia"})
	if err == nil {
		t.Fatal("expected error for unknown category, got nil")
	}
	if !strings.Contains(err.Error(), "Multimedia") {
		t.Errorf("error %q does not name the offending value", err)
	}
}

func TestNewSpecialArg(t *testing.T) {
	base := t.TempDir()

	for _, sa := range SpecialArgs {
		rec, err := New("app", base, Options{SpecialArg: sa})
		if err != nil {
			t.Errorf("New with special_arg %q: %v", sa, err)
			continue
		}
		if rec.FieldCode() == "" {
			t.Errorf("FieldCode() empty for %q", sa)
		}
	}

	if _, err := New("app", base, Options{SpecialArg: "SOMETHING"}); err == nil {
		t.Error("expected error for unknown special_arg, got nil")
	}

	rec, err := New("app", base, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if rec.SpecialArg != "" || rec.FieldCode() != "" {
		t.Errorf("unset special_arg: got %q / %q, want empty", rec.SpecialArg, rec.FieldCode())
	}
}

func TestNewFieldCodes(t *testing.T) {
	base := t.TempDir()
	codes := map[string]string{
		"SINGLE_FILE": "%f",
		"FILES_LIST":  "%F",
		"SINGLE_URL":  "%u",
		"URLS_LIST":   "%U",
	}
	for sa, want := range codes {
		rec, err := New("app", base, Options{SpecialArg: sa})
		if err != nil {
			t.Fatalf("New(%s): %v", sa, err)
		}
		if got := rec.FieldCode(); got != want {
			t.Errorf("FieldCode(%s) = %q, want %q", sa, got, want)
		}
	}
}

func TestNewIconContainment(t *testing.T) {
	base := t.TempDir()

	t.Run("relative path inside base", func(t *testing.T) {
		rec, err := New("app", base, Options{Icon: StringList{"data/app.svg"}})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		want := filepath.Join(base, "data", "app.svg")
		if len(rec.Icon) != 1 || rec.Icon[0] != want {
			t.Errorf("Icon = %v, want [%s]", rec.Icon, want)
		}
	})

	t.Run("escape via dotdot", func(t *testing.T) {
		_, err := New("app", base, Options{Icon: StringList{"../outside.png"}})
		if err == nil {
			t.Fatal("expected error for icon path escaping the package directory")
		}
	})

	t.Run("absolute path outside base", func(t *testing.T) {
		_, err := New("app", base, Options{Icon: StringList{"/etc/app.png"}})
		if err == nil {
			t.Fatal("expected error for absolute icon path outside the package directory")
		}
	})

	t.Run("absolute path inside base", func(t *testing.T) {
		inside := filepath.Join(base, "icon.png")
		rec, err := New("app", base, Options{Icon: StringList{inside}})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if len(rec.Icon) != 1 || rec.Icon[0] != inside {
			t.Errorf("Icon = %v, want [%s]", rec.Icon, inside)
		}
	})
}

func TestNewNormalizesAbsentFields(t *testing.T) {
	rec, err := New("app", t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if rec.Name != "" || rec.GenericName != "" || rec.Description != "" {
		t.Error("absent scalar fields should normalize to empty strings")
	}
	if len(rec.Icon) != 0 || len(rec.Arguments) != 0 || len(rec.Keywords) != 0 || len(rec.MimeType) != 0 {
		t.Error("absent list fields should normalize to empty sequences")
	}
}

func TestEqualByName(t *testing.T) {
	base := t.TempDir()
	a, err := New("first", base, Options{Name: "Shared", Category: "Graphics"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("second", base, Options{Name: "Shared", Category: "Utility"})
	if err != nil {
		t.Fatal(err)
	}
	c, err := New("third", base, Options{Name: "Other"})
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Error("records with the same display name should compare equal")
	}
	if a.Equal(c) {
		t.Error("records with different display names should not compare equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestCloneIsDeep(t *testing.T) {
	rec, err := New("app", t.TempDir(), Options{
		Arguments: StringList{"--one"},
		Keywords:  StringList{"k"},
	})
	if err != nil {
		t.Fatal(err)
	}
	clone := rec.Clone()
	clone.Arguments[0] = "--mutated"
	clone.Keywords = append(clone.Keywords, "extra")

	if rec.Arguments[0] != "--one" {
		t.Error("mutating the clone's arguments changed the original")
	}
	if len(rec.Keywords) != 1 {
		t.Error("mutating the clone's keywords changed the original")
	}
}
