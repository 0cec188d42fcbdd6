package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestLoggerLevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf}).WithComponent(ComponentStorage)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown", FieldCount, 2)
	out := buf.String()
	if !strings.Contains(out, "component=storage") || !strings.Contains(out, "count=2") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "component=app") {
		t.Fatalf("unexpected output: %q", out)
	}
	if logger.Component() != ComponentStorage {
		t.Fatalf("Component() = %q", logger.Component())
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Format: FormatJSON, Output: &buf})
	logger.Debug("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "hello" || rec[FieldComponent] != ComponentApp {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpCreate).
		WithExpense(4, "Food", 12.5).
		WithError(errors.New("boom"))
	if f[FieldOperation] != OpCreate || f[FieldExpenseID] != 4 || f[FieldError] != "boom" {
		t.Fatalf("unexpected fields: %v", f)
	}
	if got := len(f.ToSlice()); got != 10 {
		t.Fatalf("ToSlice len = %d, want 10", got)
	}
	if _, ok := NewFields().WithError(nil)[FieldError]; ok {
		t.Fatalf("nil error must not add a field")
	}
}
