package hue

import (
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/gopatchy/hue/internal/format"
)

// PatternGroup is the raw form of one group: pattern sources in match order
// plus an "r, g, b" color.
type PatternGroup struct {
	Patterns []string `json:"patterns" yaml:"patterns" toml:"patterns"`
	Color    string   `json:"color" yaml:"color" toml:"color"`
}

// Rules holds the raw pattern groups of one language, indexed by [Group].
type Rules [NumGroups]PatternGroup

// DecodeRules parses rule file content in the format named by ext (file
// extension without the dot) into Rules.
func DecodeRules(data []byte, ext string) (Rules, error) {
	f, err := format.Get(ext)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", ext, ErrUnknownFormat)
	}

	doc, err := f.Unmarshal(data)
	if err != nil {
		return Rules{}, fmt.Errorf("%w / %w", err, ErrPatternFileParse)
	}

	return rulesFromDoc(doc)
}

func rulesFromDoc(doc any) (Rules, error) {
	var rules Rules

	top, ok := doc.(map[string]any)
	if !ok {
		return rules, fmt.Errorf("top level is %T, want table: %w", doc, ErrPatternFileParse)
	}

	seen := [NumGroups]bool{}

	keys := make([]string, 0, len(top))
	for key := range top {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		g, err := ParseGroup(key)
		if err != nil {
			return rules, err
		}

		pg, err := groupFromDoc(top[key])
		if err != nil {
			return rules, fmt.Errorf("%s: %w", key, err)
		}

		rules[g] = pg
		seen[g] = true
	}

	for _, g := range Groups() {
		if !seen[g] {
			return rules, fmt.Errorf("%s: %w", g, ErrMissingGroup)
		}
	}

	return rules, nil
}

func groupFromDoc(doc any) (PatternGroup, error) {
	var pg PatternGroup

	m, ok := doc.(map[string]any)
	if !ok {
		return pg, fmt.Errorf("group is %T, want table: %w", doc, ErrInvalidGroup)
	}

	patterns, found := m["patterns"]
	if !found {
		return pg, fmt.Errorf("missing patterns: %w", ErrInvalidGroup)
	}

	color, found := m["color"]
	if !found {
		return pg, fmt.Errorf("missing color: %w", ErrInvalidGroup)
	}

	for key := range m {
		if key != "patterns" && key != "color" {
			return pg, fmt.Errorf("unknown field %q: %w", key, ErrInvalidGroup)
		}
	}

	colorStr, ok := color.(string)
	if !ok {
		return pg, fmt.Errorf("color is %T, want string: %w", color, ErrInvalidGroup)
	}

	list, err := patternList(patterns)
	if err != nil {
		return pg, err
	}

	pg.Patterns = list
	pg.Color = colorStr

	return pg, nil
}

// patternList accepts a list of strings, or a table keyed by integers as
// produced by flat formats (properties), ordered numerically.
func patternList(doc any) ([]string, error) {
	switch v := doc.(type) {
	case []any:
		ret := make([]string, 0, len(v))

		for i, p := range v {
			s, ok := p.(string)
			if !ok {
				return nil, fmt.Errorf("patterns[%d] is %T, want string: %w", i, p, ErrInvalidGroup)
			}

			ret = append(ret, s)
		}

		return ret, nil

	case map[string]any:
		type indexed struct {
			index  int
			source string
		}

		items := make([]indexed, 0, len(v))

		for key, p := range v {
			i, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("patterns.%s: index is not an integer: %w", key, ErrInvalidGroup)
			}

			s, ok := p.(string)
			if !ok {
				return nil, fmt.Errorf("patterns.%s is %T, want string: %w", key, p, ErrInvalidGroup)
			}

			items = append(items, indexed{i, s})
		}

		sort.Slice(items, func(a, b int) bool {
			return items[a].index < items[b].index
		})

		ret := make([]string, len(items))
		for i, item := range items {
			ret[i] = item.source
		}

		return ret, nil

	default:
		return nil, fmt.Errorf("patterns is %T, want list: %w", doc, ErrInvalidGroup)
	}
}
