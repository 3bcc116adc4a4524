package hue

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopatchy/hue/internal/fsys"
	"github.com/gopatchy/hue/pkg/log"
)

// DefaultDirs are searched, relative to the working directory, after any
// directories listed in HUE_SYNTAX_PATH.
var DefaultDirs = []string{
	"resources/syntax",
	".hue/syntax",
}

// Store is a file-backed pattern store. It searches an ordered list of
// locations for the rule file of a language; the first match wins.
type Store struct {
	locations []location
	lenient   bool
}

type location struct {
	fsys *fsys.FS
	dir  string
}

// NewStore returns a [Store] that searches dirs of fx, in order.
func NewStore(fx fs.FS, dirs ...string) *Store {
	s := &Store{}

	for _, dir := range dirs {
		s.AddLocation(fx, dir)
	}

	return s
}

// DefaultStore searches [SearchPath] on the local filesystem, then the rule
// files embedded in this package.
func DefaultStore() *Store {
	s := NewStore(os.DirFS("/"), SearchPath()...)
	s.AddLocation(EmbeddedRules(), ".")
	return s
}

// SearchPath returns the absolute, slash-separated directories
// [DefaultStore] searches: HUE_SYNTAX_PATH entries first, then [DefaultDirs].
func SearchPath() []string {
	dirs := []string{}

	if env := os.Getenv("HUE_SYNTAX_PATH"); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}

	dirs = append(dirs, DefaultDirs...)

	ret := []string{}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		abs, err := AbsDir(dir)
		if err != nil {
			log.Debugf("[store] skipping %s: %v", dir, err)
			continue
		}

		ret = append(ret, abs)
	}

	return ret
}

// AbsDir converts an OS directory path into the slash-separated absolute
// form used with an os.DirFS("/") location.
func AbsDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(abs), nil
}

// AddLocation appends a directory of fx to the search order.
func (s *Store) AddLocation(fx fs.FS, dir string) *Store {
	s.locations = append(s.locations, location{
		fsys: fsys.New(fx),
		dir:  dir,
	})

	return s
}

// SetLenient controls whether invalid regexes fail a load
// ([ErrInvalidPattern]) or are kept as patterns that never match.
func (s *Store) SetLenient(lenient bool) {
	s.lenient = lenient
}

// Locate returns the filesystem and path of the first rule file for the
// rule name across all locations.
func (s *Store) Locate(name string) (fs.FS, string, error) {
	for _, loc := range s.locations {
		p := loc.fsys.FindFile(loc.dir, name)
		if p != "" {
			return loc.fsys, p, nil
		}
	}

	return nil, "", fmt.Errorf("%s: %w", name, ErrPatternFileNotFound)
}

// Load resolves language to its rule file, then decodes and compiles it.
// Unknown languages fail with [ErrUnsupportedLanguage] before any file
// access.
func (s *Store) Load(language string) (*RuleSet, error) {
	name, err := RuleName(language)
	if err != nil {
		return nil, err
	}

	fx, p, err := s.Locate(name)
	if err != nil {
		return nil, err
	}

	log.Debugf("[store] %s -> %s", language, p)

	data, err := fs.ReadFile(fx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w / %w", p, err, ErrPatternFileNotFound)
	}

	rules, err := DecodeRules(data, strings.TrimPrefix(path.Ext(p), "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	if s.lenient {
		return rules.CompileLenient(name), nil
	}

	rs, err := rules.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	return rs, nil
}

// HighlightCode highlights code with the rule set this store has for
// language. Unless [Store.SetLenient] is on, an invalid regex in the rule
// file fails with [ErrInvalidPattern].
func (s *Store) HighlightCode(code, language string) ([]Token, error) {
	return Highlight(s, code, language)
}
