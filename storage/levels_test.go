package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, 5, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func TestGetLevelUnknownUser(t *testing.T) {
	s, dir := newTestStore(t)

	level, xp := s.GetLevel("999")
	if level != 0 || xp != 0 {
		t.Fatalf("expected (0, 0), got (%d, %d)", level, xp)
	}

	// La consulta no debe crear registro alguno.
	if got := s.Leaderboard(10); len(got) != 0 {
		t.Fatalf("expected empty leaderboard, got %d entries", len(got))
	}
	data, err := os.ReadFile(filepath.Join(dir, "levels.json"))
	if err != nil {
		t.Fatalf("reading levels.json: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected untouched levels.json, got %q", data)
	}
}

func TestAddMessageXPProgression(t *testing.T) {
	s, _ := newTestStore(t)

	// 19 mensajes: 95 XP, aún nivel 0.
	for i := 0; i < 19; i++ {
		leveledUp, _, err := s.AddMessageXP("u1")
		if err != nil {
			t.Fatalf("AddMessageXP: %v", err)
		}
		if leveledUp {
			t.Fatalf("unexpected level up at message %d", i+1)
		}
	}
	if level, xp := s.GetLevel("u1"); level != 0 || xp != 95 {
		t.Fatalf("expected (0, 95), got (%d, %d)", level, xp)
	}

	// Mensaje 20: 100 XP, cruza el umbral del nivel 1.
	leveledUp, newLevel, err := s.AddMessageXP("u1")
	if err != nil {
		t.Fatalf("AddMessageXP: %v", err)
	}
	if !leveledUp || newLevel != 1 {
		t.Fatalf("expected level up to 1, got leveledUp=%v level=%d", leveledUp, newLevel)
	}
}

func TestAddMessageXPSingleLevelCap(t *testing.T) {
	// xp0+5 cruza dos umbrales a la vez (100 y 200): solo debe subir un nivel.
	dir := t.TempDir()
	seed := `{"u1": {"xp": 195, "level": 0}}`
	if err := os.WriteFile(filepath.Join(dir, "levels.json"), []byte(seed), 0o644); err != nil {
		t.Fatalf("seeding levels.json: %v", err)
	}
	s, err := New(dir, 5, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	leveledUp, newLevel, err := s.AddMessageXP("u1")
	if err != nil {
		t.Fatalf("AddMessageXP: %v", err)
	}
	if !leveledUp || newLevel != 1 {
		t.Fatalf("expected exactly one level up, got leveledUp=%v level=%d", leveledUp, newLevel)
	}
	if level, xp := s.GetLevel("u1"); level != 1 || xp != 200 {
		t.Fatalf("expected (1, 200), got (%d, %d)", level, xp)
	}
}

func TestSetLevelOverridesState(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 7; i++ {
		if _, _, err := s.AddMessageXP("u1"); err != nil {
			t.Fatalf("AddMessageXP: %v", err)
		}
	}
	if err := s.SetLevel("u1", 7); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if level, xp := s.GetLevel("u1"); level != 7 || xp != 700 {
		t.Fatalf("expected (7, 700), got (%d, %d)", level, xp)
	}
}

func TestLeaderboardOrderAndTruncation(t *testing.T) {
	s, _ := newTestStore(t)

	levels := map[string]int{
		"a": 3, "b": 7, "c": 1, "d": 7, "e": 0,
		"f": 2, "g": 5, "h": 4, "i": 6, "j": 1, "k": 9, "l": 8,
	}
	for uid, lvl := range levels {
		if err := s.SetLevel(uid, lvl); err != nil {
			t.Fatalf("SetLevel(%s): %v", uid, err)
		}
	}

	got := s.Leaderboard(10)
	if len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Level > got[i-1].Level {
			t.Fatalf("leaderboard not non-increasing at %d: %v", i, got)
		}
	}
	if got[0].UserID != "k" || got[0].Level != 9 {
		t.Fatalf("expected k at the top, got %+v", got[0])
	}

	// Empates estables: b y d comparten nivel 7, b va primero siempre.
	first := s.Leaderboard(10)
	second := s.Leaderboard(10)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("leaderboard order not stable at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLevelsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 5, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetLevel("u1", 3); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}

	reopened, err := New(dir, 5, 100)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	if level, xp := reopened.GetLevel("u1"); level != 3 || xp != 300 {
		t.Fatalf("expected (3, 300) after reopen, got (%d, %d)", level, xp)
	}
}
