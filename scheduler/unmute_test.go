package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFires(t *testing.T) {
	jobs := NewUnmuteJobs()
	done := make(chan struct{})

	jobs.Schedule("g1", "u1", 10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled job never fired")
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	jobs := NewUnmuteJobs()
	var fired atomic.Bool

	jobs.Schedule("g1", "u1", 20*time.Millisecond, func() { fired.Store(true) })

	if !jobs.Cancel("g1", "u1") {
		t.Fatal("expected Cancel to report a pending job")
	}
	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("cancelled job still fired")
	}

	// Cancelar de nuevo no debe fallar ni reportar trabajo.
	if jobs.Cancel("g1", "u1") {
		t.Fatal("expected second Cancel to report no pending job")
	}
}

func TestRescheduleReplacesPreviousJob(t *testing.T) {
	jobs := NewUnmuteJobs()
	var first, second atomic.Bool

	jobs.Schedule("g1", "u1", 20*time.Millisecond, func() { first.Store(true) })
	jobs.Schedule("g1", "u1", 40*time.Millisecond, func() { second.Store(true) })

	time.Sleep(100 * time.Millisecond)
	if first.Load() {
		t.Fatal("replaced job still fired")
	}
	if !second.Load() {
		t.Fatal("replacement job never fired")
	}
}

func TestJobsAreKeyedPerUser(t *testing.T) {
	jobs := NewUnmuteJobs()
	var fired atomic.Int32

	jobs.Schedule("g1", "u1", 10*time.Millisecond, func() { fired.Add(1) })
	jobs.Schedule("g1", "u2", 10*time.Millisecond, func() { fired.Add(1) })
	jobs.Cancel("g1", "u1")

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected exactly the u2 job to fire, got %d", got)
	}
}
