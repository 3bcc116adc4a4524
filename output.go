package hue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/gopatchy/hue/internal/format"
)

// OutputFormats lists the names accepted by [FormatTokens].
var OutputFormats = []string{"json", "json-pretty", "jsonl", "yaml", "toml"}

// FormatTokens encodes tokens in the named format. jsonl writes one JSON
// object per line; toml, which has no top-level arrays, writes a "tokens"
// array of tables.
func FormatTokens(tokens []Token, name string) ([]byte, error) {
	if tokens == nil {
		tokens = []Token{}
	}

	switch name {
	case "jsonl":
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)

		for _, t := range tokens {
			err := enc.Encode(t)
			if err != nil {
				return nil, err
			}
		}

		return buf.Bytes(), nil

	case "toml":
		return marshal(name, map[string]any{"tokens": tokens})

	case "json", "json-pretty", "yaml":
		return marshal(name, tokens)

	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
}

func marshal(name string, v any) ([]byte, error) {
	f, err := format.Get(name)
	if err != nil || f.Marshal == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}

	return f.Marshal(v)
}

// RenderANSI writes the tokens' text to w, painting every token that is not
// [DefaultColor] with its color in the given terminal profile. Default
// tokens keep the terminal's own foreground.
func RenderANSI(w io.Writer, tokens []Token, profile termenv.Profile) error {
	for _, t := range tokens {
		text := t.Text

		if t.Color != DefaultColor {
			text = profile.String(t.Text).Foreground(profile.Color(colorHex(t.Color))).String()
		}

		_, err := io.WriteString(w, text)
		if err != nil {
			return err
		}
	}

	return nil
}
