package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/powerctl/nutctl/internal/safety"
)

// LinesResult joins lines with newlines into a text tool result. An empty
// slice produces an empty text result.
func LinesResult(lines []string) *mcp.CallToolResult {
	return mcp.NewToolResultText(strings.Join(lines, "\n"))
}

// ErrorResult returns an mcp.CallToolResult that describes an error
// condition. Tool handlers report failures this way rather than as Go
// errors.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// LogAudit logs a tool invocation to the audit logger, silently ignoring
// a nil logger.
func LogAudit(audit *safety.AuditLogger, toolName string, params map[string]any, result string, start time.Time) {
	if audit == nil {
		return
	}
	_ = audit.Log(safety.AuditEntry{
		Timestamp: start,
		Tool:      toolName,
		Params:    params,
		Result:    result,
		Duration:  time.Since(start),
	})
}

// ConfirmPrompt issues a confirmation request for a load-switch action
// and returns the prompt result carrying the single-use token.
func ConfirmPrompt(confirm *safety.ConfirmationTracker, toolName, ups, summary string) *mcp.CallToolResult {
	token := confirm.RequestConfirmation(toolName, ups, summary)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Confirmation required for %s on UPS %q.\n\n%s\n\nTo proceed, call %s again with confirmation_token=%q.",
		toolName, ups, summary, toolName, token,
	))
}
