package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRegisterRejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.Register(Job{Name: "broken", Spec: "not a cron spec", Run: func() {}})
	if err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestRegisterAcceptsStandardSpec(t *testing.T) {
	s := NewScheduler(time.UTC)
	if err := s.Register(Job{Name: "reminders", Spec: "0 9 * * *", Run: func() {}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// A slow job must not overlap itself: the next tick is skipped while the
// previous run is in flight.
func TestOverlappingRunsAreSkipped(t *testing.T) {
	s := NewScheduler(time.UTC)

	var runs atomic.Int32
	block := make(chan struct{})

	err := s.Register(Job{
		Name: "slow",
		Spec: "@every 100ms",
		Run: func() {
			runs.Add(1)
			<-block
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start()
	defer s.Stop()

	time.Sleep(450 * time.Millisecond)
	close(block)

	if got := runs.Load(); got != 1 {
		t.Fatalf("job ran %d times while blocked, want 1", got)
	}
}
