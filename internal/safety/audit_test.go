package safety

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// failingWriter always errors.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func Test_NewAuditLogger_NilWriterReturnsNil(t *testing.T) {
	if logger := NewAuditLogger(nil); logger != nil {
		t.Errorf("NewAuditLogger(nil) = %v, want nil", logger)
	}
}

func Test_Log_NilLoggerReturnsErrNilWriter(t *testing.T) {
	var logger *AuditLogger
	if err := logger.Log(AuditEntry{}); !errors.Is(err, ErrNilWriter) {
		t.Errorf("error = %v, want ErrNilWriter", err)
	}
}

func Test_Log_WritesOneJSONLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(&buf)

	entry := AuditEntry{
		Timestamp: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Tool:      "ups_load_off",
		Params:    map[string]any{"ups": "myups"},
		Result:    "ok",
		Duration:  42 * time.Millisecond,
	}
	if err := logger.Log(entry); err != nil {
		t.Fatalf("Log: %v", err)
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line does not end with a newline")
	}
	if strings.Count(line, "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", line)
	}

	var decoded AuditEntry
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v", err)
	}
	if decoded.Tool != "ups_load_off" {
		t.Errorf("Tool = %q, want %q", decoded.Tool, "ups_load_off")
	}
	if decoded.Result != "ok" {
		t.Errorf("Result = %q, want %q", decoded.Result, "ok")
	}
	if decoded.Params["ups"] != "myups" {
		t.Errorf("Params[ups] = %v, want %q", decoded.Params["ups"], "myups")
	}
}

func Test_Log_WriterErrorPropagates(t *testing.T) {
	logger := NewAuditLogger(failingWriter{})
	if err := logger.Log(AuditEntry{Tool: "ups_load_on"}); err == nil {
		t.Error("expected write error, got nil")
	}
}

func Test_Log_ConcurrentWritersProduceWholeLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAuditLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = logger.Log(AuditEntry{Tool: "ups_usage", Result: "ok"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for i, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Errorf("line %d is not valid JSON: %q", i, line)
		}
	}
}
