package format

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"json", "json-pretty", "properties", "toml", "yaml", "yml"} {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}

	if _, err := Get("ini"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestExtensionsOrder(t *testing.T) {
	got := strings.Join(Extensions(), ",")
	if got != "toml,yaml,yml,json,properties" {
		t.Errorf("unexpected order %s", got)
	}

	exts := Extensions()
	exts[0] = "mutated"

	if Extensions()[0] != "toml" {
		t.Errorf("Extensions must return a copy")
	}
}

func TestYAMLScalarsStayStrings(t *testing.T) {
	doc, err := yamlUnmarshal([]byte("color: 1, 2, 3\npatterns: [true, 12, null, '\\d+']\n"))
	if err != nil {
		t.Fatal(err)
	}

	m := doc.(map[string]any)

	if m["color"] != "1, 2, 3" {
		t.Errorf("unexpected color %#v", m["color"])
	}

	list := m["patterns"].([]any)
	expected := []string{"true", "12", "null", `\d+`}

	for i, exp := range expected {
		if list[i] != exp {
			t.Errorf("patterns[%d] = %#v, expected %q", i, list[i], exp)
		}
	}
}

func TestYAMLAlias(t *testing.T) {
	doc, err := yamlUnmarshal([]byte("a: &x [one]\nb: *x\n"))
	if err != nil {
		t.Fatal(err)
	}

	b := doc.(map[string]any)["b"].([]any)
	if len(b) != 1 || b[0] != "one" {
		t.Errorf("unexpected alias value %#v", b)
	}
}

func TestPropertiesNesting(t *testing.T) {
	doc, err := propertiesUnmarshal([]byte("kw.color = 1, 2, 3\nkw.patterns.1 = b\nkw.patterns.0 = ${a}\n"))
	if err != nil {
		t.Fatal(err)
	}

	kw := doc.(map[string]any)["kw"].(map[string]any)

	if kw["color"] != "1, 2, 3" {
		t.Errorf("unexpected color %#v", kw["color"])
	}

	patterns := kw["patterns"].(map[string]any)
	if patterns["0"] != "${a}" || patterns["1"] != "b" {
		t.Errorf("unexpected patterns %#v", patterns)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	out, err := tomlMarshal(map[string]any{"tokens": []map[string]any{{"text": "x", "start": 0}}})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(out), "[[tokens]]") {
		t.Errorf("expected array of tables, got:\n%s", out)
	}

	doc, err := tomlUnmarshal(out)
	if err != nil {
		t.Fatal(err)
	}

	tokens := doc.(map[string]any)["tokens"].([]any)
	if len(tokens) != 1 || tokens[0].(map[string]any)["text"] != "x" {
		t.Errorf("unexpected tokens %#v", tokens)
	}
}

func TestJSONPrettyTrailingNewline(t *testing.T) {
	out, err := jsonMarshalPretty([]int{1})
	if err != nil {
		t.Fatal(err)
	}

	if string(out) != "[\n  1\n]\n" {
		t.Errorf("unexpected output %q", out)
	}
}
