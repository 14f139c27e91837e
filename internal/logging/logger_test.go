package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = NewComponentLogger(logger, "classifier")
	logger.Info("path classified", String("kind", "eset"), Int("tracks", 5))

	line := buf.String()
	if !strings.Contains(line, "INFO classifier: path classified") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "kind=eset") || !strings.Contains(line, "tracks=5") {
		t.Fatalf("missing attributes in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("stage failed", String("detail", "exit status 1"))
	if !strings.Contains(buf.String(), `detail="exit status 1"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info record below warn level to be dropped, got %q", buf.String())
	}
}

func TestJSONHandlerEmitsParsableRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("run recorded", String("run_id", "abc"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal log record: %v", err)
	}
	if record["msg"] != "run recorded" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["run_id"] != "abc" {
		t.Fatalf("unexpected run_id: %v", record["run_id"])
	}
	if record["level"] != "debug" {
		t.Fatalf("unexpected level: %v", record["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
