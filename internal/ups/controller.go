package ups

import (
	"bytes"
	"context"
	"strings"

	"github.com/powerctl/nutctl/internal/nut"
	"github.com/powerctl/nutctl/internal/usage"
)

// Dialer opens a new NUT session. Injected so tests can supply fakes.
type Dialer func() (nut.Session, error)

// Compile-time interface check.
var _ Controller = (*SessionController)(nil)

// SessionController implements Controller by dialing a fresh session per
// call. NUT servers drop idle clients, so holding one socket across tool
// calls would leave later calls talking to a dead connection.
type SessionController struct {
	dial Dialer
}

// NewSessionController returns a SessionController using the provided
// dialer.
func NewSessionController(dial Dialer) *SessionController {
	if dial == nil {
		panic("nut dialer must not be nil")
	}
	return &SessionController{dial: dial}
}

// LoadOn switches the UPS load on.
func (c *SessionController) LoadOn(ctx context.Context, ups string) error {
	return c.runCommand(ctx, ups, nut.CommandLoadOn)
}

// LoadOff switches the UPS load off.
func (c *SessionController) LoadOff(ctx context.Context, ups string) error {
	return c.runCommand(ctx, ups, nut.CommandLoadOff)
}

// Usage renders one line per requested type, in input order. A failure
// discards any partially rendered output; MCP results are all-or-nothing
// unlike the CLI's streamed lines.
func (c *SessionController) Usage(ctx context.Context, ups string, types []usage.Type) ([]string, error) {
	s, err := c.dial()
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	var buf bytes.Buffer
	r := &usage.Reporter{Session: s, UPS: ups, Out: &buf}
	if err := r.Report(ctx, types); err != nil {
		return nil, err
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}

func (c *SessionController) runCommand(ctx context.Context, ups, command string) error {
	s, err := c.dial()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	return s.RunCommand(ctx, ups, command)
}
