package hue

// Token is a single-color run of source text. Start and End are absolute
// byte offsets into the highlighted document, End exclusive.
type Token struct {
	Text  string `json:"text" yaml:"text" toml:"text"`
	Color string `json:"color" yaml:"color" toml:"color"`
	Start int    `json:"start" yaml:"start" toml:"start"`
	End   int    `json:"end" yaml:"end" toml:"end"`
}

// Highlight colors one line, which must not contain a newline. lineOffset is
// the absolute byte offset of the line's first byte.
//
// Groups are applied in priority order. Strings matches always overwrite;
// every other group only colors bytes nothing has claimed yet. Runs of equal
// color are then coalesced into Tokens, with unclaimed bytes taking
// [DefaultColor].
func (rs *RuleSet) Highlight(line string, lineOffset int) []Token {
	if line == "" {
		return []Token{}
	}

	colors := make([]string, len(line))

	for _, cg := range rs.groups {
		color := ParseColor(cg.color)
		overwrite := cg.group.overwrites()

		for _, re := range cg.patterns {
			if re == nil {
				continue
			}

			for _, loc := range re.FindAllStringIndex(line, -1) {
				for i := loc[0]; i < loc[1]; i++ {
					if overwrite || colors[i] == "" {
						colors[i] = color
					}
				}
			}
		}
	}

	return coalesce(line, lineOffset, colors)
}

func coalesce(line string, lineOffset int, colors []string) []Token {
	tokens := []Token{}
	start := 0

	for i := 1; i <= len(line); i++ {
		if i < len(line) && resolved(colors[i]) == resolved(colors[start]) {
			continue
		}

		tokens = append(tokens, Token{
			Text:  line[start:i],
			Color: resolved(colors[start]),
			Start: lineOffset + start,
			End:   lineOffset + i,
		})

		start = i
	}

	if len(tokens) == 0 {
		tokens = append(tokens, Token{
			Text:  line,
			Color: DefaultColor,
			Start: lineOffset,
			End:   lineOffset + len(line),
		})
	}

	return tokens
}

func resolved(color string) string {
	if color == "" {
		return DefaultColor
	}
	return color
}
