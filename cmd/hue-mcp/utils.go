package main

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func parseOptionalString(args map[string]any, key string, defaultValue string) string {
	if val := args[key]; val != nil {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}
	return defaultValue
}

func parseOptionalBool(args map[string]any, key string) bool {
	if val := args[key]; val != nil {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func jsonResult(response any) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
