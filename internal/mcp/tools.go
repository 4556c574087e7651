package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/codeexplainer/internal/language"
)

// explainCodeTool defines the explain_code MCP tool.
var explainCodeTool = mcp.NewTool("explain_code",
	mcp.WithDescription("Explain a piece of source code point by point with headings. Falls back to a generic explanation when the AI provider is unreachable."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to explain"),
	),
	mcp.WithString("language",
		mcp.Description("Language of the code (default javascript)"),
		mcp.Enum(languageEnum()...),
	),
	mcp.WithBoolean("html",
		mcp.Description("Return the formatted HTML instead of the raw markdown text"),
	),
)

// listLanguagesTool defines the list_languages MCP tool.
var listLanguagesTool = mcp.NewTool("list_languages",
	mcp.WithDescription("List the languages accepted by explain_code."),
)

func languageEnum() []string {
	tags := language.All()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
