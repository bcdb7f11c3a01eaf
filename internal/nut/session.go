package nut

import (
	"context"
	"fmt"
	"log"
	"strings"

	gonut "github.com/robbiet480/go.nut"
)

// Compile-time interface check.
var _ Session = (*TCPSession)(nil)

// TCPSession is a Session backed by a live go.nut connection. It is owned
// by a single call stack; no locking is provided.
type TCPSession struct {
	client *gonut.Client
	debug  bool
}

// Dial connects to the NUT server described by cfg and, when a username
// is configured, authenticates. An unreachable host and a rejected login
// both fail here; a *TCPSession is only returned on success.
func Dial(cfg Config) (*TCPSession, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("nut: server host is required")
	}

	client, err := gonut.Connect(cfg.Host, cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("nut: connect %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	s := &TCPSession{client: &client, debug: cfg.Debug}

	if cfg.Username != "" {
		s.trace(">> USERNAME " + cfg.Username)
		if _, err := s.client.Authenticate(cfg.Username, cfg.Password); err != nil {
			_, _ = s.client.Disconnect()
			return nil, fmt.Errorf("nut: authenticate as %q: %w", cfg.Username, err)
		}
	}

	return s, nil
}

// RunCommand issues INSTCMD for the named UPS. The server answers OK on
// success; anything else (unknown UPS, unknown command, access denied)
// comes back as an error naming the command.
func (s *TCPSession) RunCommand(ctx context.Context, ups, command string) error {
	resp, err := s.exchange(ctx, fmt.Sprintf("INSTCMD %s %s", ups, command))
	if err != nil {
		return fmt.Errorf("nut: run %s on %q: %w", command, ups, err)
	}
	if len(resp) == 0 || !strings.HasPrefix(resp[0], "OK") {
		return fmt.Errorf("nut: run %s on %q: unexpected response %q", command, ups, strings.Join(resp, " "))
	}
	return nil
}

// GetVariable fetches one variable and returns it as "<name>: <value>".
func (s *TCPSession) GetVariable(ctx context.Context, ups, name string) (string, error) {
	resp, err := s.exchange(ctx, fmt.Sprintf("GET VAR %s %s", ups, name))
	if err != nil {
		return "", fmt.Errorf("nut: get %s for %q: %w", name, ups, err)
	}
	value, err := parseVarResponse(resp, ups, name)
	if err != nil {
		return "", fmt.Errorf("nut: get %s for %q: %w", name, ups, err)
	}
	return name + ": " + value, nil
}

// Close disconnects from the server.
func (s *TCPSession) Close() error {
	if s.client == nil {
		return nil
	}
	if _, err := s.client.Disconnect(); err != nil {
		return fmt.Errorf("nut: disconnect: %w", err)
	}
	return nil
}

// exchange sends one raw protocol line through the library and returns the
// response lines. go.nut owns framing and transport; this layer only adds
// context checks and debug tracing.
func (s *TCPSession) exchange(ctx context.Context, line string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.trace(">> " + line)
	resp, err := s.client.SendCommand(line)
	if err != nil {
		return nil, err
	}
	for _, l := range resp {
		s.trace("<< " + l)
	}
	return resp, nil
}

func (s *TCPSession) trace(line string) {
	if s.debug {
		log.Println(line)
	}
}

// parseVarResponse extracts the quoted value from a GET VAR response line
// of the form `VAR <ups> <name> "<value>"`.
func parseVarResponse(resp []string, ups, name string) (string, error) {
	if len(resp) == 0 {
		return "", fmt.Errorf("empty response")
	}
	line := resp[0]
	prefix := fmt.Sprintf("VAR %s %s ", ups, name)
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("unexpected response %q", line)
	}
	value := strings.TrimPrefix(line, prefix)
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)
	return value, nil
}
