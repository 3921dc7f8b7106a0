package storage

import "testing"

func TestTicketLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	prev, err := s.SetTicket("u1", "chan-1")
	if err != nil {
		t.Fatalf("SetTicket: %v", err)
	}
	if prev != "" {
		t.Fatalf("expected no previous ticket, got %q", prev)
	}

	if ch, ok := s.GetTicket("u1"); !ok || ch != "chan-1" {
		t.Fatalf("expected (chan-1, true), got (%q, %v)", ch, ok)
	}
	if uid, ok := s.TicketOwner("chan-1"); !ok || uid != "u1" {
		t.Fatalf("expected (u1, true), got (%q, %v)", uid, ok)
	}

	if err := s.DeleteTicket("u1"); err != nil {
		t.Fatalf("DeleteTicket: %v", err)
	}
	if _, ok := s.GetTicket("u1"); ok {
		t.Fatal("expected ticket record removed after close")
	}
	if _, ok := s.TicketOwner("chan-1"); ok {
		t.Fatal("expected no owner for closed ticket channel")
	}
}

func TestSecondTicketOverwritesMapping(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.SetTicket("u1", "chan-1"); err != nil {
		t.Fatalf("SetTicket: %v", err)
	}
	prev, err := s.SetTicket("u1", "chan-2")
	if err != nil {
		t.Fatalf("SetTicket: %v", err)
	}
	// El canal anterior queda huérfano; el registro apunta al nuevo.
	if prev != "chan-1" {
		t.Fatalf("expected previous chan-1, got %q", prev)
	}
	if ch, _ := s.GetTicket("u1"); ch != "chan-2" {
		t.Fatalf("expected chan-2, got %q", ch)
	}
}

func TestDeleteUnknownTicketIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.DeleteTicket("ghost"); err != nil {
		t.Fatalf("DeleteTicket on unknown user: %v", err)
	}
}

func TestWarnsResetToZero(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.GetWarns("u1"); got != 0 {
		t.Fatalf("expected 0 warns by default, got %d", got)
	}
	if err := s.ResetWarns("u1"); err != nil {
		t.Fatalf("ResetWarns: %v", err)
	}
	if got := s.GetWarns("u1"); got != 0 {
		t.Fatalf("expected 0 warns after reset, got %d", got)
	}

	// El reset queda persistido como entrada explícita a cero.
	reopened, err := New(s.dir, 5, 100)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	if got := reopened.GetWarns("u1"); got != 0 {
		t.Fatalf("expected 0 warns after reopen, got %d", got)
	}
}
