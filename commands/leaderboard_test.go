package commands

import (
	"strings"
	"testing"

	"nexo/storage"
)

func TestFormatLeaderboard(t *testing.T) {
	entries := []storage.LevelEntry{
		{UserID: "1", Level: 9},
		{UserID: "2", Level: 7},
		{UserID: "3", Level: 7},
		{UserID: "4", Level: 2},
	}
	names := map[string]string{"1": "ana", "2": "beto", "3": "carla", "4": "dani"}

	got := formatLeaderboard(entries, func(uid string) string { return names[uid] })

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "🥇 ana - Nivel 9" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "🥈 beto - Nivel 7" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
	if !strings.Contains(lines[3], "4.") || !strings.Contains(lines[3], "dani") {
		t.Errorf("expected numbered row for dani, got %q", lines[3])
	}
}

func TestFormatLeaderboardFallbackName(t *testing.T) {
	entries := []storage.LevelEntry{{UserID: "42", Level: 1}}

	got := formatLeaderboard(entries, func(uid string) string { return "<@" + uid + ">" })
	if !strings.Contains(got, "<@42>") {
		t.Fatalf("expected mention fallback in %q", got)
	}
}
