package ups

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/powerctl/nutctl/internal/safety"
	"github.com/powerctl/nutctl/internal/tools"
	"github.com/powerctl/nutctl/internal/usage"
)

// Tool names exposed by the serve mode.
const (
	ToolLoadOn  = "ups_load_on"
	ToolLoadOff = "ups_load_off"
	ToolUsage   = "ups_usage"
)

// UPSTools returns the MCP tool registrations for UPS control and
// reporting, wired to the provided controller and safety components.
// defaultUPS is used when a call omits the ups parameter.
func UPSTools(
	ctrl Controller,
	filter *safety.Filter,
	confirm *safety.ConfirmationTracker,
	audit *safety.AuditLogger,
	defaultUPS string,
) []tools.Registration {
	return []tools.Registration{
		toolLoadOn(ctrl, filter, confirm, audit, defaultUPS),
		toolLoadOff(ctrl, filter, confirm, audit, defaultUPS),
		toolUsage(ctrl, filter, audit, defaultUPS),
	}
}

func toolLoadOn(ctrl Controller, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger, defaultUPS string) tools.Registration {
	return loadSwitchTool(
		ToolLoadOn,
		"Switch the UPS load on. Requires confirmation.",
		"switch the load on",
		ctrl.LoadOn,
		filter, confirm, audit, defaultUPS,
	)
}

func toolLoadOff(ctrl Controller, filter *safety.Filter, confirm *safety.ConfirmationTracker, audit *safety.AuditLogger, defaultUPS string) tools.Registration {
	return loadSwitchTool(
		ToolLoadOff,
		"Switch the UPS load off, cutting power to connected equipment. Requires confirmation.",
		"switch the load off",
		ctrl.LoadOff,
		filter, confirm, audit, defaultUPS,
	)
}

// loadSwitchTool builds one of the two load-switch Registrations. Both
// share the parameter shape and the deny/confirm/act sequence; only the
// name, description, and controller action differ.
func loadSwitchTool(
	toolName, description, verb string,
	act func(ctx context.Context, ups string) error,
	filter *safety.Filter,
	confirm *safety.ConfirmationTracker,
	audit *safety.AuditLogger,
	defaultUPS string,
) tools.Registration {
	tool := mcp.NewTool(toolName,
		mcp.WithDescription(description),
		mcp.WithString("ups",
			mcp.Description("UPS device name (defaults to the configured UPS)"),
		),
		mcp.WithString("confirmation_token",
			mcp.Description("Confirmation token returned by a prior call to this tool"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		upsName := req.GetString("ups", defaultUPS)
		token := req.GetString("confirmation_token", "")
		params := map[string]any{"ups": upsName}

		if upsName == "" {
			return tools.ErrorResult("ups name is required and no default is configured"), nil
		}

		if !filter.IsAllowed(upsName) {
			tools.LogAudit(audit, toolName, params, "denied", start)
			return tools.ErrorResult(fmt.Sprintf("access to UPS %q is not allowed", upsName)), nil
		}

		if !confirm.Confirm(token) {
			summary := fmt.Sprintf("This will %s for UPS %q.", verb, upsName)
			return tools.ConfirmPrompt(confirm, toolName, upsName, summary), nil
		}

		if err := act(ctx, upsName); err != nil {
			tools.LogAudit(audit, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, toolName, params, "ok", start)
		return mcp.NewToolResultText(fmt.Sprintf("command sent to UPS %q", upsName)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolUsage(ctrl Controller, filter *safety.Filter, audit *safety.AuditLogger, defaultUPS string) tools.Registration {
	tool := mcp.NewTool(ToolUsage,
		mcp.WithDescription("Report UPS electrical metrics, one line per requested usage type. "+
			"Accepted types: vin/volt_in/voltage_in, vout/volt_out/voltage_out, cout/cur_out/current_out, pwr/power."),
		mcp.WithString("ups",
			mcp.Description("UPS device name (defaults to the configured UPS)"),
		),
		mcp.WithArray("usage_types",
			mcp.Required(),
			mcp.Description("Usage types to report, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		upsName := req.GetString("ups", defaultUPS)
		requested := req.GetStringSlice("usage_types", nil)
		params := map[string]any{"ups": upsName, "usage_types": requested}

		if upsName == "" {
			return tools.ErrorResult("ups name is required and no default is configured"), nil
		}

		if !filter.IsAllowed(upsName) {
			tools.LogAudit(audit, ToolUsage, params, "denied", start)
			return tools.ErrorResult(fmt.Sprintf("access to UPS %q is not allowed", upsName)), nil
		}

		types, err := usage.ParseTypes(requested)
		if err != nil {
			tools.LogAudit(audit, ToolUsage, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		lines, err := ctrl.Usage(ctx, upsName, types)
		if err != nil {
			tools.LogAudit(audit, ToolUsage, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogAudit(audit, ToolUsage, params, "ok", start)
		return tools.LinesResult(lines), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
