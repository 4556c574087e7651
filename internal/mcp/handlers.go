package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
	"github.com/ziadkadry99/codeexplainer/internal/language"
)

// handleExplainCode runs one explain request and returns the explanation text.
func (s *Server) handleExplainCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}

	lang, err := language.Parse(request.GetString("language", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.Explain(ctx, explainer.Request{Code: code, Language: lang})
	if err != nil {
		if errors.Is(err, explainer.ErrEmptyCode) {
			return mcp.NewToolResultError("Please enter some code to explain."), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("explain failed: %v", err)), nil
	}

	body := res.Raw
	if request.GetBool("html", false) {
		body = res.HTML
	}
	if res.Notice != "" {
		body = "> " + res.Notice + "\n\n" + body
	}
	return mcp.NewToolResultText(body), nil
}

// handleListLanguages returns one "tag - name" line per supported language.
func (s *Server) handleListLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, t := range language.All() {
		fmt.Fprintf(&sb, "%s - %s", t, t.DisplayName())
		if t == language.Default {
			sb.WriteString(" (default)")
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}
