package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden info")
	logger.Warning("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden info") {
		t.Errorf("Expected info to be filtered at warning level, got %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "[test]") {
		t.Errorf("Expected module-tagged warning, got %q", out)
	}
}

func TestAsPrintf(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()
	SetLevel(Debug)

	AsPrintf(New("renderer")).Printf("rendered %d rows\n", 12)

	out := buf.String()
	if !strings.Contains(out, "rendered 12 rows") {
		t.Errorf("Expected formatted message, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected the trailing newline to be trimmed, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
		valid    bool
	}{
		{"debug", Debug, true},
		{"INFO", Info, true},
		{"Warning", Warning, true},
		{"error", Error, true},
		{"loud", Notice, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			if tt.valid != (err == nil) {
				t.Fatalf("Expected valid=%v, got error %v", tt.valid, err)
			}
			if level != tt.expected {
				t.Errorf("Expected level %d, got %d", tt.expected, level)
			}
		})
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	SetLevel(Debug)
	var buf bytes.Buffer
	SetSink(&buf)

	New("bvh").Debug("built 7 nodes")

	out := buf.String()
	if !strings.Contains(out, "built 7 nodes") {
		t.Errorf("Expected debug output after changing sinks, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected plain output for a buffer sink, got %q", out)
	}
	if !strings.Contains(out, "DEBU [bvh]") {
		t.Errorf("Expected level and module tags, got %q", out)
	}
}
