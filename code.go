package hue

import "strings"

// Loader resolves a language identifier to a compiled [RuleSet].
// [Store] and [Cache] implement it.
type Loader interface {
	Load(language string) (*RuleSet, error)
}

// HighlightCode highlights code using the rule files found by
// [DefaultStore], which rejects rule files containing invalid regexes. See
// [Highlight] for lenient loading.
func HighlightCode(code, language string) ([]Token, error) {
	return Highlight(DefaultStore(), code, language)
}

// Highlight loads the rule set for language from loader and highlights code
// with it. Load errors are returned as-is and no Tokens are produced.
//
// A [Store] is strict by default: one invalid regex in a rule file fails the
// load with [ErrInvalidPattern]. Use [Store.SetLenient] (or
// [Rules.CompileLenient]) to skip invalid patterns and keep the rest.
func Highlight(loader Loader, code, language string) ([]Token, error) {
	rs, err := loader.Load(language)
	if err != nil {
		return nil, err
	}

	return rs.HighlightCode(code), nil
}

// HighlightCode splits code on "\n" and highlights each line, joining the
// per-line Tokens with one default-colored Token per newline. The Tokens'
// texts concatenate back to code.
func (rs *RuleSet) HighlightCode(code string) []Token {
	tokens := []Token{}
	offset := 0

	for i, line := range strings.Split(code, "\n") {
		if i > 0 {
			tokens = append(tokens, Token{
				Text:  "\n",
				Color: DefaultColor,
				Start: offset,
				End:   offset + 1,
			})
			offset++
		}

		tokens = append(tokens, rs.Highlight(line, offset)...)
		offset += len(line)
	}

	return tokens
}
