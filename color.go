package hue

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultColor is used for bytes no pattern claims and for colors that fail
// to parse.
const DefaultColor = "#ffffff"

// ParseColor converts a raw "r, g, b" color into its canonical
// "rgb(r, g, b)" form. Anything else yields [DefaultColor].
func ParseColor(raw string) string {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return DefaultColor
	}

	var rgb [3]uint64

	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return DefaultColor
		}

		rgb[i] = v
	}

	return fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])
}

// colorHex converts a resolved color back to "#rrggbb" for renderers that
// want hex.
func colorHex(color string) string {
	var r, g, b uint8

	_, err := fmt.Sscanf(color, "rgb(%d, %d, %d)", &r, &g, &b)
	if err != nil {
		return DefaultColor
	}

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
