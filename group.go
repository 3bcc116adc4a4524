package hue

import (
	"fmt"
	"regexp"
)

// Group is one of the seven pattern categories. Declaration order is
// priority order: a lower Group claims a byte before any higher one.
type Group int

const (
	Strings Group = iota
	Comments
	Numbers
	Keywords
	Types
	Methods
	Operators

	NumGroups = int(Operators) + 1
)

var groupNames = [NumGroups]string{
	Strings:   "strings",
	Comments:  "comments",
	Numbers:   "numbers",
	Keywords:  "keywords",
	Types:     "types",
	Methods:   "methods",
	Operators: "operators",
}

// Groups returns every Group in priority order.
func Groups() []Group {
	ret := make([]Group, NumGroups)
	for i := range ret {
		ret[i] = Group(i)
	}
	return ret
}

// String returns the key used for the group in rule files.
func (g Group) String() string {
	if g < 0 || int(g) >= NumGroups {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// ParseGroup is the inverse of [Group.String].
func ParseGroup(name string) (Group, error) {
	for i, n := range groupNames {
		if n == name {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("%s: %w", name, ErrUnknownGroup)
}

// overwrites reports whether matches of this group replace colors already
// assigned by earlier patterns. Only strings do.
func (g Group) overwrites() bool {
	return g == Strings
}

// expr turns a pattern source into the regular expression actually matched
// for this group.
func (g Group) expr(source string) string {
	switch g {
	case Keywords, Types:
		return `\b` + regexp.QuoteMeta(source) + `\b`

	case Operators:
		return regexp.QuoteMeta(source)

	default:
		return source
	}
}
