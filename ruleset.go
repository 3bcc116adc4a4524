package hue

import (
	"fmt"
	"regexp"

	"github.com/gopatchy/hue/pkg/log"
)

// RuleSet is the compiled, immutable form of [Rules]. It is safe for
// concurrent use.
type RuleSet struct {
	name   string
	groups [NumGroups]compiledGroup
}

type compiledGroup struct {
	group    Group
	color    string
	patterns []*regexp.Regexp // nil entries never match
}

// Compile compiles every pattern, failing with [ErrInvalidPattern] on the
// first one that is not a valid regular expression.
func (r Rules) Compile(name string) (*RuleSet, error) {
	return r.compile(name, false)
}

// CompileLenient compiles every pattern, keeping invalid ones as patterns
// that never match.
func (r Rules) CompileLenient(name string) *RuleSet {
	rs, _ := r.compile(name, true)
	return rs
}

func (r Rules) compile(name string, lenient bool) (*RuleSet, error) {
	rs := &RuleSet{
		name: name,
	}

	for _, g := range Groups() {
		pg := r[g]

		cg := compiledGroup{
			group:    g,
			color:    pg.Color,
			patterns: make([]*regexp.Regexp, len(pg.Patterns)),
		}

		for i, source := range pg.Patterns {
			re, err := regexp.Compile(g.expr(source))
			if err != nil {
				if !lenient {
					return nil, fmt.Errorf("%s %s[%d] %q: %w / %w", name, g, i, source, err, ErrInvalidPattern)
				}

				log.Debugf("[%s] skipping %s[%d] %q: %v", name, g, i, source, err)

				continue
			}

			cg.patterns[i] = re
		}

		rs.groups[g] = cg
	}

	return rs, nil
}

// Name returns the rule name the set was loaded under.
func (rs *RuleSet) Name() string {
	return rs.name
}
