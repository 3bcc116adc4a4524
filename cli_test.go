package hue_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopatchy/hue"
)

func setupCLISyntaxDir(t *testing.T, rules map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "syntax")

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	for name, content := range rules {
		err := os.WriteFile(filepath.Join(dir, name+".toml"), []byte(content), 0o644)
		if err != nil {
			t.Fatalf("Failed to write rule file %s: %v", name, err)
		}
	}

	return dir
}

func executeCLICommand(t *testing.T, cmdPath string, args []string, stdin string) ([]byte, []byte, error) {
	t.Helper()

	cmd := exec.Command("go", append([]string{"run", cmdPath}, args...)...)
	cmd.Dir = "."
	cmd.Stdin = strings.NewReader(stdin)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}

func TestCLI(t *testing.T) {
	if testing.Short() {
		t.Skip("builds cmd/hue with go run")
	}

	t.Parallel()

	suite := loadSuite(t)
	syntaxDir := setupCLISyntaxDir(t, suite.Rules)

	colors := map[string]string{"": hue.DefaultColor}

	for _, content := range suite.Rules {
		rules, err := hue.DecodeRules([]byte(content), "toml")
		if err != nil {
			t.Fatal(err)
		}

		for _, g := range hue.Groups() {
			colors[g.String()] = hue.ParseColor(rules[g].Color)
		}
	}

	for name, tc := range suite.Cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			args := []string{"--syntax-dir", syntaxDir, "--no-embedded", "--language", tc.Language, "--format", "json", "-"}

			stdout, stderr, err := executeCLICommand(t, "./cmd/hue", args, tc.Code)

			if tc.Error != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, but got no error\nOutput: %s", tc.Error, stdout)
				}

				if !strings.Contains(string(stderr), tc.Error) {
					t.Fatalf("Expected error containing %q, but got: %v\nStderr: %s", tc.Error, err, stderr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v\nStderr: %s", err, stderr)
			}

			var tokens []hue.Token
			if err := json.Unmarshal(stdout, &tokens); err != nil {
				t.Fatalf("failed to parse output: %v\nOutput: %s", err, stdout)
			}

			checkTokens(t, tc.Code, tokens)

			if len(tokens) != len(tc.Expected) {
				t.Fatalf("Expected %d tokens, got %d: %s", len(tc.Expected), len(tokens), stdout)
			}

			for i, exp := range tc.Expected {
				sep := strings.LastIndex(exp, "|")
				if tokens[i].Text != exp[:sep] || tokens[i].Color != colors[exp[sep+1:]] {
					t.Errorf("token %d: expected %q, got %#v", i, exp, tokens[i])
				}
			}
		})
	}
}

func TestCLIDetectsLanguage(t *testing.T) {
	if testing.Short() {
		t.Skip("builds cmd/hue with go run")
	}

	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.py")
	if err := os.WriteFile(path, []byte("def f():\n    return 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := executeCLICommand(t, "./cmd/hue", []string{"--format", "jsonl", path}, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nStderr: %s", err, stderr)
	}

	first, _, _ := strings.Cut(string(stdout), "\n")
	if !strings.Contains(first, `"text":"def"`) {
		t.Errorf("Expected def keyword first, got:\n%s", stdout)
	}
}

func TestCLIDiff(t *testing.T) {
	if testing.Short() {
		t.Skip("builds cmd/hued with go run")
	}

	t.Parallel()

	suite := loadSuite(t)
	left := setupCLISyntaxDir(t, suite.Rules)

	changed := map[string]string{}
	for name, content := range suite.Rules {
		changed[name] = strings.Replace(content, `"4, 4, 4"`, `"40, 40, 40"`, 1)
	}

	right := setupCLISyntaxDir(t, changed)

	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte("let x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := executeCLICommand(t, "./cmd/hued", []string{"--left", left, "--right", right, path}, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nStderr: %s", err, stderr)
	}

	for _, line := range []string{`-0-3 rgb(4, 4, 4) "let"`, `+0-3 rgb(40, 40, 40) "let"`} {
		if !strings.Contains(string(stdout), line) {
			t.Errorf("Expected diff line %q, got:\n%s", line, stdout)
		}
	}

	stdout, stderr, err = executeCLICommand(t, "./cmd/hued", []string{"--left", left, "--right", left, path}, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v\nStderr: %s", err, stderr)
	}

	if len(stdout) != 0 {
		t.Errorf("Expected no diff, got:\n%s", stdout)
	}
}
