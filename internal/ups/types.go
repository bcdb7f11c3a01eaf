// Package ups exposes NUT load-switch and usage operations behind a
// controller interface and as MCP tools.
package ups

import (
	"context"

	"github.com/powerctl/nutctl/internal/usage"
)

// Controller defines the UPS operations the MCP surface exposes.
type Controller interface {
	// LoadOn switches the load of the named UPS on.
	LoadOn(ctx context.Context, ups string) error
	// LoadOff switches the load of the named UPS off.
	LoadOff(ctx context.Context, ups string) error
	// Usage returns one formatted line per requested usage type, in
	// input order.
	Usage(ctx context.Context, ups string, types []usage.Type) ([]string, error)
}

// DestructiveTools lists the tool names that require confirmation before
// acting: both load-switch tools cut or restore power to real equipment.
var DestructiveTools = []string{
	ToolLoadOn,
	ToolLoadOff,
}
