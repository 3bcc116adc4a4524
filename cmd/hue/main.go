package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"

	"github.com/gopatchy/hue"
	"github.com/gopatchy/hue/pkg/log"
	"github.com/gopatchy/hue/pkg/version"
)

type options struct {
	Language     *string         `short:"l" long:"language" description:"language identifier or file extension (detected from inputPath if omitted)"`
	OutputPath   *flags.Filename `short:"o" long:"output" description:"output file path"`
	OutputFormat string          `short:"f" long:"format" description:"output format" default:"ansi" choice:"ansi" choice:"json" choice:"json-pretty" choice:"jsonl" choice:"yaml" choice:"toml"`
	SyntaxDirs   []string        `short:"s" long:"syntax-dir" description:"directory searched for rule files before the default search path (repeatable)"`
	NoEmbedded   bool            `long:"no-embedded" description:"do not fall back to the built-in rule files"`
	Lenient      bool            `long:"lenient" description:"skip invalid patterns instead of failing"`
	List         bool            `long:"list-languages" description:"print supported language identifiers and exit"`
	Verbose      bool            `short:"v" long:"verbose" description:"enable verbose logging"`
	Version      bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		InputPath flags.Filename `positional-arg-name:"inputPath" description:"file to highlight (- or omitted for stdin)"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
hue colors source code with per-language regular expression rules.

Rule files are searched in --syntax-dir directories, then $HUE_SYNTAX_PATH,
then resources/syntax and .hue/syntax, then the built-in rules.

Related tools:
* hued
* hue-mcp`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	if opts.List {
		fmt.Println(strings.Join(hue.Languages(), "\n"))
		return
	}

	inputPath := string(opts.Positional.InputPath)

	code, err := readInput(inputPath)
	if err != nil {
		fatal(err)
	}

	language := ""
	if opts.Language != nil {
		language = *opts.Language
	} else {
		language, err = hue.DetectLanguage(inputPath, code)
		if err != nil {
			fatal(fmt.Errorf("%w (use --language)", err))
		}
	}

	store := newStore(opts.SyntaxDirs, !opts.NoEmbedded)
	store.SetLenient(opts.Lenient)

	tokens, err := store.HighlightCode(string(code), language)
	if err != nil {
		fatal(err)
	}

	fh := os.Stdout

	if opts.OutputPath != nil {
		fh, err = os.OpenFile(string(*opts.OutputPath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			fatal(err)
		}
		defer fh.Close()
	}

	if opts.OutputFormat == "ansi" {
		err = hue.RenderANSI(fh, tokens, termenv.NewOutput(fh).Profile)
	} else {
		var out []byte

		out, err = hue.FormatTokens(tokens, opts.OutputFormat)
		if err == nil {
			_, err = fh.Write(out)
		}
	}

	if err != nil {
		fatal(err)
	}
}

func newStore(dirs []string, embedded bool) *hue.Store {
	store := hue.NewStore(os.DirFS("/"), absDirs(dirs)...)

	for _, dir := range hue.SearchPath() {
		store.AddLocation(os.DirFS("/"), dir)
	}

	if embedded {
		store.AddLocation(hue.EmbeddedRules(), ".")
	}

	return store
}

func absDirs(dirs []string) []string {
	ret := []string{}

	for _, dir := range dirs {
		abs, err := hue.AbsDir(dir)
		if err != nil {
			fatal(err)
		}

		ret = append(ret, abs)
	}

	return ret
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
