package hue

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// CompareResult describes how two rule sources color the same code.
type CompareResult struct {
	Left     string
	Right    string
	Language string
	Diff     string
}

// Compare highlights code for language with both loaders and diffs the
// token listings. Diff is empty when both produce the same tokens.
func Compare(left, right Loader, leftName, rightName, code, language string) (*CompareResult, error) {
	a, err := Highlight(left, code, language)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", leftName, err)
	}

	b, err := Highlight(right, code, language)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rightName, err)
	}

	return &CompareResult{
		Left:     leftName,
		Right:    rightName,
		Language: language,
		Diff:     CompareTokens(leftName, rightName, a, b),
	}, nil
}

// CompareTokens returns a unified diff of two token streams, rendered one
// token per line, or "" if they are identical.
func CompareTokens(leftName, rightName string, a, b []Token) string {
	left := tokenListing(a)
	right := tokenListing(b)

	if left == right {
		return ""
	}

	edits := myers.ComputeEdits(span.URIFromPath(leftName), left, right)

	return fmt.Sprint(gotextdiff.ToUnified(leftName, rightName, left, edits))
}

func tokenListing(tokens []Token) string {
	b := &strings.Builder{}

	for _, t := range tokens {
		fmt.Fprintf(b, "%d-%d %s %q\n", t.Start, t.End, t.Color, t.Text)
	}

	return b.String()
}
