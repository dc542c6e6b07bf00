package timectrl

import (
	"testing"
	"time"
)

func TestControllerStepAdvancesAndNotifies(t *testing.T) {
	c := NewController(100, 5, Replay)

	var seen []float64
	c.AddListener(func(tm float64) { seen = append(seen, tm) })

	if got := c.Step(); got != 105 {
		t.Fatalf("Step returned %v, want 105", got)
	}
	c.Step()

	if c.Now() != 110 {
		t.Fatalf("Now = %v, want 110", c.Now())
	}
	if len(seen) != 2 || seen[0] != 105 || seen[1] != 110 {
		t.Fatalf("listener saw %v, want [105 110]", seen)
	}
}

func TestControllerSeek(t *testing.T) {
	c := NewController(0, 1, Replay)

	var last float64
	c.AddListener(func(tm float64) { last = tm })

	c.Seek(42)
	if c.Now() != 42 || last != 42 {
		t.Fatalf("after Seek: Now=%v listener=%v, want 42", c.Now(), last)
	}

	// seeking backward is allowed
	c.Seek(7)
	if c.Now() != 7 {
		t.Fatalf("after backward Seek: Now=%v, want 7", c.Now())
	}
}

func TestControllerModes(t *testing.T) {
	if NewController(0, 1, Replay).IsLiveMode() {
		t.Fatalf("Replay controller reports live mode")
	}
	if !NewController(0, 1, Live).IsLiveMode() {
		t.Fatalf("Live controller does not report live mode")
	}
}

func TestControllerRunStopsAfterDuration(t *testing.T) {
	c := NewController(0, 1, Replay)

	steps := 0
	c.AddListener(func(float64) { steps++ })

	done := c.Run(time.Millisecond, 3)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not finish")
	}

	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if c.Now() != 3 {
		t.Fatalf("Now after run = %v, want 3", c.Now())
	}
}
