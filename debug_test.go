package aml

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSlogLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(&buf, "json", "warn")
	l.Info("hidden")
	l.Warn("shown", "animation", "fade")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec["msg"] != "shown" || rec["component"] != "aml" || rec["animation"] != "fade" {
		t.Errorf("record = %v", rec)
	}
}

func TestSlogLoggerText(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(&buf, "", "debug")
	l.Debug("tick", "stepped", 3)
	out := buf.String()
	if !strings.Contains(out, "msg=tick") || !strings.Contains(out, "stepped=3") || !strings.Contains(out, "component=aml") {
		t.Errorf("output = %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"verbose": "INFO",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
