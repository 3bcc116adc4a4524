package hue_test

import (
	"errors"
	"testing"

	"github.com/gopatchy/hue"
)

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	for in, expected := range map[string]string{
		"js":    "js",
		"JS":    "js",
		" .Ts ": "ts",
		".py":   "py",
		"..py":  ".py",
		"":      "",
	} {
		if got := hue.NormalizeLanguage(in); got != expected {
			t.Errorf("NormalizeLanguage(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestRuleName(t *testing.T) {
	t.Parallel()

	for lang, expected := range map[string]string{
		"js":       "javascript",
		"JSX":      "javascript",
		"mjs":      "javascript",
		"tsx":      "typescript",
		"rs":       "rust",
		"py":       "python",
		"scss":     "css",
		"htm":      "html",
		"markdown": "markdown",
		"yml":      "yaml",
		"svg":      "xml",
		"go":       "go",
		"json":     "json",
	} {
		name, err := hue.RuleName(lang)
		if err != nil {
			t.Errorf("RuleName(%q): %v", lang, err)
			continue
		}

		if name != expected {
			t.Errorf("RuleName(%q) = %q, expected %q", lang, name, expected)
		}
	}

	for _, lang := range []string{"", "javascript", "c", "xyz"} {
		_, err := hue.RuleName(lang)
		if !errors.Is(err, hue.ErrUnsupportedLanguage) {
			t.Errorf("RuleName(%q): expected ErrUnsupportedLanguage, got %v", lang, err)
		}
	}
}

func TestLanguagesSorted(t *testing.T) {
	t.Parallel()

	langs := hue.Languages()
	for i := 1; i < len(langs); i++ {
		if langs[i-1] >= langs[i] {
			t.Fatalf("languages not sorted/unique at %d: %v", i, langs)
		}
	}

	names := hue.RuleNames()
	if len(names) != 11 {
		t.Errorf("expected 11 rule names, got %v", names)
	}
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		content  string
		expected string
	}{
		{"main.go", "package main\n", "go"},
		{"APP.JS", "let x = 1\n", "js"},
		{"dir/component.tsx", "", "tsx"},
		{"styles.less", "", "less"},
		{"script", "#!/usr/bin/env python3\nprint(1)\n", "py"},
		{"run", "#!/usr/bin/env node\nconsole.log(1)\n", "js"},
	}

	for _, tt := range tests {
		lang, err := hue.DetectLanguage(tt.path, []byte(tt.content))
		if err != nil {
			t.Errorf("DetectLanguage(%q): %v", tt.path, err)
			continue
		}

		if lang != tt.expected {
			t.Errorf("DetectLanguage(%q) = %q, expected %q", tt.path, lang, tt.expected)
		}
	}

	_, err := hue.DetectLanguage("notes.txt", []byte("hello\n"))
	if !errors.Is(err, hue.ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}
