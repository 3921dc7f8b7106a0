package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesDataFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir, 5, 100); err != nil {
		t.Fatalf("New: %v", err)
	}

	// Los cuatro archivos del directorio de datos, drops.json incluido.
	for _, name := range []string{"levels.json", "warnings.json", "tickets.json", "drops.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if string(data) != "{}" {
			t.Errorf("expected %s initialized as empty object, got %q", name, data)
		}
	}
}

func TestNewRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "levels.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}
	if _, err := New(dir, 5, 100); err == nil {
		t.Fatal("expected error for corrupt levels.json, got nil")
	}
}

func TestPersistedFileShapes(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 5, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.SetLevel("123", 2); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if err := s.ResetWarns("123"); err != nil {
		t.Fatalf("ResetWarns: %v", err)
	}
	if _, err := s.SetTicket("123", "chan-1"); err != nil {
		t.Fatalf("SetTicket: %v", err)
	}

	t.Run("levels", func(t *testing.T) {
		var got map[string]LevelRecord
		readJSON(t, filepath.Join(dir, "levels.json"), &got)
		if got["123"] != (LevelRecord{XP: 200, Level: 2}) {
			t.Fatalf("unexpected levels.json content: %+v", got)
		}
	})
	t.Run("warnings", func(t *testing.T) {
		var got map[string]int
		readJSON(t, filepath.Join(dir, "warnings.json"), &got)
		if v, ok := got["123"]; !ok || v != 0 {
			t.Fatalf("unexpected warnings.json content: %+v", got)
		}
	})
	t.Run("tickets", func(t *testing.T) {
		var got map[string]string
		readJSON(t, filepath.Join(dir, "tickets.json"), &got)
		if got["123"] != "chan-1" {
			t.Fatalf("unexpected tickets.json content: %+v", got)
		}
	})
}

func readJSON(t *testing.T, path string, dst any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
}
