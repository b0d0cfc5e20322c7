package sim

import (
	"testing"
	"time"
)

func TestTimerFiresAtInterval(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)

	tm.Tick(60 * time.Millisecond)
	if tm.Fired() {
		t.Fatal("fired before interval elapsed")
	}
	tm.Tick(60 * time.Millisecond)
	if !tm.Fired() {
		t.Fatal("did not fire after interval elapsed")
	}
	// 20ms of overshoot carried into the next cycle.
	tm.Tick(60 * time.Millisecond)
	if tm.Fired() {
		t.Fatal("fired with only 80ms accumulated")
	}
	tm.Tick(60 * time.Millisecond)
	if !tm.Fired() {
		t.Fatal("did not fire on second cycle")
	}
}

func TestTimerFiredStableWithinFrame(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	tm.Tick(150 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if !tm.Fired() {
			t.Fatalf("read %d: fired flag changed within the frame", i)
		}
	}
	tm.Tick(10 * time.Millisecond)
	if tm.Fired() {
		t.Fatal("fired flag leaked into the next frame")
	}
}

func TestTimerLongFrameFiresOnce(t *testing.T) {
	tm := NewTimer(100 * time.Millisecond)
	// A 350ms frame fires one tick; the backlog is dropped, not bursted.
	tm.Tick(350 * time.Millisecond)
	if !tm.Fired() {
		t.Fatal("did not fire on long frame")
	}
	tm.Tick(40 * time.Millisecond)
	if tm.Fired() {
		t.Fatal("burst-fired after long frame")
	}
	tm.Tick(20 * time.Millisecond)
	if !tm.Fired() {
		t.Fatal("carry-over from long frame lost")
	}
}
