package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml/v2"

	"github.com/gopatchy/hue/pkg/log"
)

type options struct {
	Tests    string `short:"t" long:"tests" default:"tests.toml" description:"case table to analyze"`
	Parallel int    `short:"j" long:"parallel" default:"8" description:"number of concurrent go test runs"`
	Verbose  bool   `short:"v" long:"verbose" description:"enable verbose logging"`
}

type caseResult struct {
	name        string
	uniqueLines int
	err         error
}

type analyzer struct {
	tests    string
	baseline map[string]bool
	counter  int64
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
hue-coverage runs the TestCases suite once per case in the case table, each
time leaving that case out, and reports cases that cover no line the rest of
the suite misses.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	if opts.Verbose {
		log.Debug = true
	}

	if opts.Parallel < 1 {
		opts.Parallel = 1
	}

	names, err := caseNames(opts.Tests)
	if err != nil {
		fatal(err)
	}

	a := &analyzer{tests: opts.Tests}

	fmt.Println("Running baseline coverage...")

	a.baseline, err = a.coverage("")
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Baseline: %d blocks covered by %d cases\n", len(a.baseline), len(names))

	printResults(a.analyze(names, opts.Parallel))
}

// coverage runs the case table without the named case (none if "") and
// returns the covered blocks.
func (a *analyzer) coverage(exclude string) (map[string]bool, error) {
	id := atomic.AddInt64(&a.counter, 1)
	profile := filepath.Join(os.TempDir(), fmt.Sprintf("hue-cover-%d-%d.out", os.Getpid(), id))
	defer os.Remove(profile)

	args := []string{"test", "-run", "^TestCases$", "-coverprofile=" + profile, ".", "-args", "-test.tests=" + a.tests}
	if exclude != "" {
		args = append(args, "-test.exclude="+exclude)
	}

	log.Debugf("[coverage] go %s", strings.Join(args, " "))

	cmd := exec.Command("go", args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("go test without %q: %w\n%s", exclude, err, stderr)
	}

	return parseProfile(profile)
}

func parseProfile(path string) (map[string]bool, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	covered := map[string]bool{}
	scanner := bufio.NewScanner(fh)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "mode:") {
			continue
		}

		// file:start.col,end.col statements count
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[2] == "0" {
			continue
		}

		covered[fields[0]] = true
	}

	return covered, scanner.Err()
}

func caseNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	suite := struct {
		Cases map[string]any `toml:"cases"`
	}{}

	err = toml.Unmarshal(data, &suite)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	names := make([]string, 0, len(suite.Cases))
	for name := range suite.Cases {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

func (a *analyzer) analyze(names []string, parallel int) []caseResult {
	results := make([]caseResult, len(names))
	sem := make(chan struct{}, parallel)
	wg := sync.WaitGroup{}
	done := int64(0)

	for i, name := range names {
		wg.Add(1)

		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = caseResult{name: name}

			without, err := a.coverage(name)
			if err != nil {
				results[i].err = err
			} else {
				for block := range a.baseline {
					if !without[block] {
						results[i].uniqueLines++
					}
				}
			}

			fmt.Printf("\rProgress: %d/%d", atomic.AddInt64(&done, 1), len(names))
		}()
	}

	wg.Wait()
	fmt.Println()

	return results
}

func printResults(results []caseResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].uniqueLines == results[j].uniqueLines {
			return results[i].name < results[j].name
		}
		return results[i].uniqueLines < results[j].uniqueLines
	})

	zero := []string{}

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.name, r.err)
			continue
		}

		if r.uniqueLines == 0 {
			zero = append(zero, r.name)
		}
	}

	fmt.Printf("\nCases with no unique coverage: %d of %d\n", len(zero), len(results))
	printInColumns(zero, 80)

	fmt.Println("\nUnique coverage per case:")

	for i := len(results) - 1; i >= 0; i-- {
		if results[i].err == nil && results[i].uniqueLines > 0 {
			fmt.Printf("  %-40s %4d blocks\n", results[i].name, results[i].uniqueLines)
		}
	}
}

func printInColumns(items []string, width int) {
	if len(items) == 0 {
		return
	}

	colWidth := 0
	for _, item := range items {
		colWidth = max(colWidth, len(item)+2)
	}

	cols := max(1, width/colWidth)

	for i, item := range items {
		fmt.Printf("%-*s", colWidth, item)

		if (i+1)%cols == 0 || i == len(items)-1 {
			fmt.Println()
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
