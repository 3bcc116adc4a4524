package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gopatchy/hue"
)

func (s *Server) highlightHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	language, err := request.RequireString("language")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]any)

	var loader hue.Loader = s.strict
	if parseOptionalBool(args, "lenient") {
		loader = s.lenient
	}

	tokens, err := hue.Highlight(loader, code, language)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Highlighting failed: %v", err)), nil
	}

	response := map[string]any{
		"language":  language,
		"tokens":    tokens,
		"count":     len(tokens),
		"operation": "highlight",
	}

	return jsonResult(response)
}

func (s *Server) detectLanguageHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, _ := request.Params.Arguments.(map[string]any)
	content := parseOptionalString(args, "content", "")

	language, err := hue.DetectLanguage(path, []byte(content))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Detection failed: %v", err)), nil
	}

	rule, err := hue.RuleName(language)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := map[string]any{
		"path":      path,
		"language":  language,
		"rule":      rule,
		"operation": "detect_language",
	}

	return jsonResult(response)
}

func (s *Server) languagesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]any{
		"languages":  hue.Languages(),
		"rules":      hue.RuleNames(),
		"searchPath": s.dirs,
		"operation":  "languages",
	}

	return jsonResult(response)
}
