package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/gopatchy/hue"
	"github.com/gopatchy/hue/pkg/log"
	"github.com/gopatchy/hue/pkg/version"
)

type options struct {
	Language *string `short:"l" long:"language" description:"language identifier or file extension (detected from inputPath if omitted)"`
	Left     string  `long:"left" required:"true" description:"rule directory for the left side"`
	Right    string  `long:"right" required:"true" description:"rule directory for the right side"`
	Lenient  bool    `long:"lenient" description:"skip invalid patterns instead of failing"`
	Verbose  bool    `short:"v" long:"verbose" description:"enable verbose logging"`
	Version  bool    `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		InputPath flags.Filename `positional-arg-name:"inputPath" required:"true" description:"file to highlight"`
	} `positional-args:"yes"`
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
hued highlights one file with the rule files of two directories and prints a
unified diff of the resulting token streams. No output means both rule
directories color the file identically.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.PrintVersion(opts.Version)

	if opts.Verbose {
		log.Debug = true
	}

	inputPath := string(opts.Positional.InputPath)

	code, err := os.ReadFile(inputPath)
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

	left := newStore(opts.Left, opts.Lenient)
	right := newStore(opts.Right, opts.Lenient)

	result, err := hue.Compare(left, right, opts.Left, opts.Right, string(code), language)
	if err != nil {
		fatal(err)
	}

	_, err = os.Stdout.WriteString(result.Diff)
	if err != nil {
		fatal(err)
	}
}

func newStore(dir string, lenient bool) *hue.Store {
	abs, err := hue.AbsDir(dir)
	if err != nil {
		fatal(err)
	}

	store := hue.NewStore(os.DirFS("/"), abs)
	store.SetLenient(lenient)

	return store
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
