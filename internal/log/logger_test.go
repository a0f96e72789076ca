package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestJSONFormatterOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	Configure(logger, buf, "info", "json")

	logger.WithField(FieldRunID, "abc").Info("test message")

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("expected JSON output, got error: %v", err)
	}
	if payload["msg"] != "test message" {
		t.Fatalf("expected msg field to be 'test message', got %v", payload["msg"])
	}
	if payload[FieldRunID] != "abc" {
		t.Fatalf("expected run_id field, got %v", payload[FieldRunID])
	}
}

func TestPrettyFormatterShortensRunID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	Configure(logger, buf, "debug", "pretty")

	logger.WithFields(logrus.Fields{
		FieldRunID: "0123456789abcdef",
		"created":  2,
	}).Info("sync done")

	line := buf.String()
	if !strings.Contains(line, "sync done") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "=01234567") || strings.Contains(line, "0123456789abcdef") {
		t.Fatalf("expected shortened run id, got %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logrus.New()
	Configure(logger, &bytes.Buffer{}, "loud", "text")
	if logger.Level != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.Level)
	}
}
