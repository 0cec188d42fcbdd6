package csvfile

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"expensetracker/internal/core"
	"expensetracker/internal/log"
)

func newTestStore(t *testing.T, path string) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelDebug, Output: &buf})
	return New(path, logger), &buf
}

func TestStoreLoadMissingFile(t *testing.T) {
	s, _ := newTestStore(t, filepath.Join(t.TempDir(), "nope.csv"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, _ := newTestStore(t, path)
	got, err := s.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected load: %v err=%v", got, err)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	s, _ := newTestStore(t, path)

	in := []core.Expense{
		{ID: 1, Date: "2025-01-15", Category: "Food", Description: `Lunch, with "friends"`, Amount: 12.5},
		{ID: 2, Date: "2025-01-20", Category: "Travel", Description: "", Amount: 230},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := Header + "\n" +
		`"1","2025-01-15","Food","Lunch, with ""friends""","12.5"` + "\n" +
		`"2","2025-01-20","Travel","","230"` + "\n"
	if string(raw) != want {
		t.Fatalf("unexpected file content:\n%s", raw)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("loaded %+v, want %+v", got, in)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	s, _ := newTestStore(t, path)

	many := []core.Expense{
		{ID: 1, Date: "2025-01-01", Category: "A", Amount: 1},
		{ID: 2, Date: "2025-01-02", Category: "B", Amount: 2},
		{ID: 3, Date: "2025-01-03", Category: "C", Amount: 3},
	}
	if err := s.Save(many); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(many[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected file to be replaced, got %+v", got)
	}

	if err := s.Save(nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != Header+"\n" {
		t.Fatalf("expected header only, got %q", raw)
	}
}

func TestStoreLoadLogsSkippedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	doc := Header + "\n" +
		`"1","2025-01-15","Food","Lunch","12.5"` + "\n" +
		`"2","2025-01-16","Food"` + "\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, logs := newTestStore(t, path)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected expenses: %+v", got)
	}
	out := logs.String()
	if !strings.Contains(out, "Skipped malformed row") || !strings.Contains(out, "line=3") {
		t.Fatalf("expected skipped row to be logged, got %q", out)
	}
	if !strings.Contains(out, "component=storage") {
		t.Fatalf("expected storage component, got %q", out)
	}
}

func TestStoreLoadParentIsFile(t *testing.T) {
	plain := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(plain, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, _ := newTestStore(t, filepath.Join(plain, "expenses.csv"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("path under a regular file must load as empty: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestStoreLoadUnreadable(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := t.TempDir()
	s, _ := newTestStore(t, dir)
	_, err := s.Load()
	if err == nil {
		t.Fatalf("expected error reading a directory")
	}
	if n := strings.Count(err.Error(), dir); n != 1 {
		t.Fatalf("error should name the path once, got %v", err)
	}
}

func TestStoreSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"target is a directory": dir,
		"parent is missing":     filepath.Join(dir, "missing", "expenses.csv"),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestStore(t, path)
			err := s.Save([]core.Expense{{ID: 1, Date: "2025-01-01", Category: "A", Amount: 1}})
			if err == nil {
				t.Fatalf("expected save error")
			}
			if n := strings.Count(err.Error(), path); n != 1 {
				t.Fatalf("error should name the path once, got %v", err)
			}
		})
	}
}

func TestStoreNilLogger(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "x.csv"), nil)
	if _, err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Path() == "" {
		t.Fatalf("Path() must not be empty")
	}
}
