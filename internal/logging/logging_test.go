package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestInitJSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, FormatJSON, &buf)
	defer Init(LevelInfo, FormatText, os.Stderr)

	ctx := WithRequestID(context.Background(), "req-1")
	LoggerFromContext(ctx).Info("hello", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}
	if rec["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", rec["request_id"])
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, FormatText, &buf)
	defer Init(LevelInfo, FormatText, os.Stderr)

	Info("hidden")
	LineSkipped(3, "invalid UTF-8")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "dictionary_line_skipped") || !strings.Contains(out, "line=3") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestPackageHelpers(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		log   func(string, ...any)
		want  bool
	}{
		{"debug at debug", LevelDebug, Debug, true},
		{"debug at info", LevelInfo, Debug, false},
		{"warn at warn", LevelWarn, Warn, true},
		{"warn at error", LevelError, Warn, false},
		{"error at error", LevelError, Error, true},
	}

	defer Init(LevelInfo, FormatText, os.Stderr)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(tt.level, FormatText, &buf)
			tt.log("helper_message", "key", "value")
			got := strings.Contains(buf.String(), "helper_message key=value")
			if got != tt.want {
				t.Errorf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("GetRequestID = %q, want empty", id)
	}
}
