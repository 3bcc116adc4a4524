package format

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

func yamlMarshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}

	err = enc.Close()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func yamlUnmarshal(in []byte) (any, error) {
	var node yaml.Node

	err := yaml.Unmarshal(in, &node)
	if err != nil {
		return nil, err
	}

	return yamlTranslateNode(&node)
}

// yamlTranslateNode converts a node tree to maps, lists and strings. Scalars
// keep their source text regardless of tag, so keyword lists containing
// true, null or 0x survive as patterns.
func yamlTranslateNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlTranslateNode(node.Content[0])

	case yaml.SequenceNode:
		ret := []any{}

		for _, v := range node.Content {
			v2, err := yamlTranslateNode(v)
			if err != nil {
				return nil, err
			}

			ret = append(ret, v2)
		}

		return ret, nil

	case yaml.MappingNode:
		ret := map[string]any{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			v2, err := yamlTranslateNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			ret[node.Content[i].Value] = v2
		}

		return ret, nil

	case yaml.ScalarNode:
		return node.Value, nil

	case yaml.AliasNode:
		return yamlTranslateNode(node.Alias)

	case 0:
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown yaml type: %d", node.Kind)
	}
}
