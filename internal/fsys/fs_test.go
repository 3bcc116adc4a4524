package fsys

import (
	"testing"
	"testing/fstest"
)

func TestFindFile(t *testing.T) {
	f := New(fstest.MapFS{
		"rules/go.yaml":        &fstest.MapFile{Data: []byte("x")},
		"rules/go.json":        &fstest.MapFile{Data: []byte("x")},
		"rules/rust.toml/a":    &fstest.MapFile{Data: []byte("x")},
		"rules/rust.yml":       &fstest.MapFile{Data: []byte("x")},
		"rules/css.properties": &fstest.MapFile{Data: []byte("x")},
	})

	tests := []struct {
		dir      string
		base     string
		expected string
	}{
		{"rules", "go", "rules/go.yaml"},
		{"/rules", "go", "rules/go.yaml"},
		{"rules", "rust", "rules/rust.yml"},
		{"rules", "css", "rules/css.properties"},
		{"rules", "python", ""},
		{"missing", "go", ""},
	}

	for _, tt := range tests {
		got := f.FindFile(tt.dir, tt.base)

		// Rooted dirs come back rooted; compare without the prefix.
		if tt.dir[0] == '/' && got != "" {
			got = f.convertToFS(got)
		}

		if got != tt.expected {
			t.Errorf("FindFile(%q, %q) = %q, expected %q", tt.dir, tt.base, got, tt.expected)
		}
	}
}

func TestReadFileRooted(t *testing.T) {
	f := New(fstest.MapFS{
		"a/b.toml": &fstest.MapFile{Data: []byte("data")},
	})

	for _, name := range []string{"a/b.toml", "/a/b.toml", "a/./b.toml", "/a/../a/b.toml"} {
		data, err := f.ReadFile(name)
		if err != nil {
			t.Errorf("ReadFile(%q): %v", name, err)
			continue
		}

		if string(data) != "data" {
			t.Errorf("ReadFile(%q) = %q", name, data)
		}
	}

	if f.convertToFS("/") != "." {
		t.Errorf("root should map to .")
	}
}
