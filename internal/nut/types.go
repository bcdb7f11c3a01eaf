// Package nut wraps the NUT (Network UPS Tools) client library behind a
// narrow session interface so command and reporting logic can be tested
// against a fake without a live server.
package nut

import "context"

// Instant command names understood by NUT load switches.
const (
	CommandLoadOn  = "load.on"
	CommandLoadOff = "load.off"
)

// Config holds the connection parameters for one NUT server session.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// Debug enables tracing of raw protocol lines to stderr.
	Debug bool
}

// Session is the capability surface nutctl needs from a NUT connection:
// run an instant command and fetch a status variable, both against a
// named UPS device.
type Session interface {
	// RunCommand executes the named instant command.
	RunCommand(ctx context.Context, ups, command string) error
	// GetVariable fetches the named variable. The returned text has the
	// form "<name>: <value>", where <value> is the server's raw value.
	GetVariable(ctx context.Context, ups, name string) (string, error)
	Close() error
}
