package commands

import (
	"errors"
	"testing"
)

func TestDropFirstClaimWins(t *testing.T) {
	r := NewDropRegistry()
	r.Open("msg1", "Nitro")

	prize, err := r.Claim("msg1", "u1")
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if prize != "Nitro" {
		t.Fatalf("expected prize Nitro, got %q", prize)
	}
	if winner, ok := r.ClaimedBy("msg1"); !ok || winner != "u1" {
		t.Fatalf("expected winner u1, got (%q, %v)", winner, ok)
	}
}

func TestDropSecondClaimRejected(t *testing.T) {
	r := NewDropRegistry()
	r.Open("msg1", "Nitro")

	if _, err := r.Claim("msg1", "u1"); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if _, err := r.Claim("msg1", "u2"); !errors.Is(err, ErrDropClaimed) {
		t.Fatalf("expected ErrDropClaimed, got %v", err)
	}

	// El ganador registrado no cambia.
	if winner, _ := r.ClaimedBy("msg1"); winner != "u1" {
		t.Fatalf("expected winner u1 after rejected claim, got %q", winner)
	}
}

func TestDropUnknownMessage(t *testing.T) {
	r := NewDropRegistry()
	if _, err := r.Claim("ghost", "u1"); !errors.Is(err, ErrDropUnknown) {
		t.Fatalf("expected ErrDropUnknown, got %v", err)
	}
}

func TestOpenDropsListing(t *testing.T) {
	r := NewDropRegistry()
	r.Open("msg2", "Skin")
	r.Open("msg1", "Nitro")
	r.Open("msg3", "Robux")

	if _, err := r.Claim("msg2", "u1"); err != nil {
		t.Fatalf("claim: %v", err)
	}

	open := r.OpenDrops()
	if len(open) != 2 {
		t.Fatalf("expected 2 open drops, got %d", len(open))
	}
	if open[0].MessageID != "msg1" || open[1].MessageID != "msg3" {
		t.Fatalf("unexpected open drops order: %+v", open)
	}
}
