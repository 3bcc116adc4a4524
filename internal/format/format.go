package format

import (
	"encoding/json"
	"fmt"
)

// Format handles marshaling and unmarshaling for a specific file format.
// Either function may be nil when the format only works in one direction.
type Format struct {
	Marshal   func(any) ([]byte, error)
	Unmarshal func([]byte) (any, error)
}

var formatByExtension = map[string]Format{
	"json": {
		Marshal:   json.Marshal,
		Unmarshal: jsonUnmarshal,
	},
	"json-pretty": {
		Marshal: jsonMarshalPretty,
	},
	"properties": {
		Unmarshal: propertiesUnmarshal,
	},
	"toml": {
		Marshal:   tomlMarshal,
		Unmarshal: tomlUnmarshal,
	},
	"yaml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
	"yml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
}

// Rule files are looked up with these extensions, in this order.
var ruleExtensions = []string{"toml", "yaml", "yml", "json", "properties"}

// Get retrieves a format by name from the registry
func Get(name string) (*Format, error) {
	ft, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("unknown format %q", name)
	}

	return &ft, nil
}

// Extensions returns the rule file extensions in lookup order
func Extensions() []string {
	return append([]string{}, ruleExtensions...)
}

func jsonUnmarshal(in []byte) (any, error) {
	var obj any

	err := json.Unmarshal(in, &obj)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

func jsonMarshalPretty(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}
