package format

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

func tomlMarshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := toml.NewEncoder(buf)
	enc.SetIndentTables(true)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func tomlUnmarshal(in []byte) (any, error) {
	var obj any

	err := toml.Unmarshal(in, &obj)
	if err != nil {
		return nil, err
	}

	return obj, nil
}
