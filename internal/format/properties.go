package format

import (
	"strings"

	"github.com/magiconair/properties"
)

// propertiesUnmarshal expands dotted keys into nested maps:
//
//	keywords.color = 198, 120, 221
//	keywords.patterns.0 = let
//
// becomes {"keywords": {"color": "...", "patterns": {"0": "let"}}}.
// Backslashes are escapes in this format, so regexes need them doubled.
// ${...} expansion is off since regexes use braces.
func propertiesUnmarshal(data []byte) (any, error) {
	l := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	p, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}

	result := make(map[string]any)
	for _, key := range p.Keys() {
		value := p.GetString(key, "")
		setNestedValue(result, key, value)
	}

	return result, nil
}

func setNestedValue(m map[string]any, key string, value string) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return
		}

		_, exists := current[part]
		if !exists {
			current[part] = make(map[string]any)
		}

		nextMap, ok := current[part].(map[string]any)
		if !ok {
			return
		}

		current = nextMap
	}
}
