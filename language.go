package hue

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"golang.org/x/exp/slices"
)

// ruleByLanguage maps normalized language identifiers (mostly file
// extensions) to rule names. Several identifiers share one rule file.
var ruleByLanguage = map[string]string{
	"js":       "javascript",
	"jsx":      "javascript",
	"mjs":      "javascript",
	"cjs":      "javascript",
	"ts":       "typescript",
	"tsx":      "typescript",
	"mts":      "typescript",
	"cts":      "typescript",
	"rs":       "rust",
	"py":       "python",
	"pyw":      "python",
	"json":     "json",
	"css":      "css",
	"scss":     "css",
	"sass":     "css",
	"less":     "css",
	"html":     "html",
	"htm":      "html",
	"md":       "markdown",
	"mdx":      "markdown",
	"markdown": "markdown",
	"yml":      "yaml",
	"yaml":     "yaml",
	"xml":      "xml",
	"svg":      "xml",
	"go":       "go",
}

// languageByEnryName maps go-enry language names to an identifier in
// ruleByLanguage.
var languageByEnryName = map[string]string{
	"CSS":        "css",
	"Go":         "go",
	"HTML":       "html",
	"JSON":       "json",
	"JavaScript": "js",
	"Less":       "less",
	"Markdown":   "md",
	"MDX":        "mdx",
	"Python":     "py",
	"Rust":       "rs",
	"Sass":       "sass",
	"SCSS":       "scss",
	"SVG":        "svg",
	"TSX":        "tsx",
	"TypeScript": "ts",
	"XML":        "xml",
	"YAML":       "yaml",
}

// NormalizeLanguage lower-cases an identifier and strips surrounding space
// and one leading dot, so "JS", " js" and ".js" are the same language.
func NormalizeLanguage(language string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(language)), ".")
}

// RuleName returns the rule file name (without extension) for language.
func RuleName(language string) (string, error) {
	name, found := ruleByLanguage[NormalizeLanguage(language)]
	if !found {
		return "", fmt.Errorf("%s: %w", language, ErrUnsupportedLanguage)
	}

	return name, nil
}

// Languages returns every supported identifier, sorted.
func Languages() []string {
	ret := make([]string, 0, len(ruleByLanguage))
	for lang := range ruleByLanguage {
		ret = append(ret, lang)
	}

	slices.Sort(ret)

	return ret
}

// RuleNames returns every distinct rule name, sorted.
func RuleNames() []string {
	ret := []string{}
	for _, name := range ruleByLanguage {
		if !slices.Contains(ret, name) {
			ret = append(ret, name)
		}
	}

	slices.Sort(ret)

	return ret
}

// DetectLanguage picks a language identifier for a file. The extension wins
// when it is supported; otherwise the name and content are classified with
// go-enry (shebangs, well-known filenames, content heuristics).
func DetectLanguage(path string, content []byte) (string, error) {
	ext := NormalizeLanguage(filepath.Ext(path))
	if _, found := ruleByLanguage[ext]; found {
		return ext, nil
	}

	name := enry.GetLanguage(filepath.Base(path), content)
	if lang, found := languageByEnryName[name]; found {
		return lang, nil
	}

	return "", fmt.Errorf("%s (detected %q): %w", path, name, ErrUnsupportedLanguage)
}
