package main

import (
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gopatchy/hue"
	"github.com/gopatchy/hue/pkg/log"
	"github.com/gopatchy/hue/pkg/version"
)

type options struct {
	SyntaxDirs []string      `short:"s" long:"syntax-dir" description:"directory searched for rule files before the default search path (repeatable)"`
	Watch      bool          `short:"w" long:"watch" description:"reload rule files when they change on disk"`
	CacheTTL   time.Duration `long:"cache-ttl" default:"10m" description:"how long compiled rule sets are cached"`
	Verbose    bool          `short:"v" long:"verbose" description:"enable verbose logging (stderr)"`
}

// Server holds the loaders the tool handlers share. Strict and lenient
// requests use separate caches over the same search path.
type Server struct {
	strict  *hue.Cache
	lenient *hue.Cache
	dirs    []string
}

func NewServer(dirs []string, ttl time.Duration) *Server {
	strict := hue.NewStore(os.DirFS("/"), dirs...)
	strict.AddLocation(hue.EmbeddedRules(), ".")

	lenient := hue.NewStore(os.DirFS("/"), dirs...)
	lenient.AddLocation(hue.EmbeddedRules(), ".")
	lenient.SetLenient(true)

	return &Server{
		strict:  hue.NewCache(strict, ttl),
		lenient: hue.NewCache(lenient, ttl),
		dirs:    dirs,
	}
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
hue-mcp serves hue's syntax highlighting as MCP tools over stdio.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	if opts.Verbose {
		log.Debug = true
	}

	dirs := []string{}

	for _, dir := range opts.SyntaxDirs {
		abs, err := hue.AbsDir(dir)
		if err != nil {
			stdlog.Fatalf("Invalid syntax dir %s: %v", dir, err)
		}

		dirs = append(dirs, abs)
	}

	dirs = append(dirs, hue.SearchPath()...)

	s := NewServer(dirs, opts.CacheTTL)

	if opts.Watch {
		osDirs := make([]string, len(dirs))
		for i, dir := range dirs {
			osDirs[i] = filepath.FromSlash(dir)
		}

		for _, cache := range []*hue.Cache{s.strict, s.lenient} {
			w, err := hue.NewWatcher(cache, osDirs...)
			if err != nil {
				stdlog.Printf("Not watching rule directories: %v", err)
				break
			}
			defer w.Close()
		}
	}

	mcpServer := server.NewMCPServer(
		"hue-mcp",
		version.Short(),
		server.WithToolCapabilities(false),
	)

	highlightTool := mcp.NewTool("highlight",
		mcp.WithDescription("Highlight source code and return colored tokens with absolute byte offsets"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Source code to highlight"),
		),
		mcp.WithString("language",
			mcp.Required(),
			mcp.Description("Language identifier or file extension (e.g. js, ts, rs, py)"),
		),
		mcp.WithBoolean("lenient",
			mcp.Description("Skip invalid patterns in rule files instead of failing"),
		),
	)
	mcpServer.AddTool(highlightTool, s.highlightHandler)

	detectTool := mcp.NewTool("detect_language",
		mcp.WithDescription("Detect the language identifier for a file from its name and optional content"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File name or path"),
		),
		mcp.WithString("content",
			mcp.Description("File content, used when the extension is not enough"),
		),
	)
	mcpServer.AddTool(detectTool, s.detectLanguageHandler)

	languagesTool := mcp.NewTool("languages",
		mcp.WithDescription("List supported language identifiers, rule names and the rule search path"),
	)
	mcpServer.AddTool(languagesTool, s.languagesHandler)

	versionTool := mcp.NewTool("version",
		mcp.WithDescription("Get version and build information for hue"),
	)
	mcpServer.AddTool(versionTool, versionHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		stdlog.Fatalf("Server error: %v", err)
	}
}
