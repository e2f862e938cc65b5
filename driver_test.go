package osier

import (
	"math"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

// pump advances driver, scheduler and view together, the way a host frame
// loop does, until the sweep completes.
func pump(t *testing.T, drv *Driver, queue *TurnQueue, view interface{ Step(time.Duration) }) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if drv.Done() {
			return
		}
		drv.Update(frame)
		queue.RunTurn()
		view.Step(frame)
	}
	t.Fatal("driver did not finish within 500 frames")
}

func TestIntroDriverSweepsToCompletion(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fade(view, Params{Duration: 500 * time.Millisecond}, WithScheduler(queue))

	drv := NewIntroDriver(tr)
	pump(t, drv, queue, view)

	if drv.T() != 1 {
		t.Errorf("driver finished at t = %f, want exactly 1", drv.T())
	}
	// Let the native side play out its remaining frames.
	view.Step(200 * time.Millisecond)
	if op := view.Opacity(); math.Abs(op-1) > 0.01 {
		t.Errorf("opacity = %f, want ~1 after the intro", op)
	}
	if len(view.requests) != 1 {
		t.Errorf("intro issued %d native animations, want 1", len(view.requests))
	}
}

func TestOutroDriverSweepsToCompletion(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fade(view, Params{Duration: 500 * time.Millisecond}, WithScheduler(queue))

	drv := NewOutroDriver(tr)
	pump(t, drv, queue, view)

	if drv.T() != 0 {
		t.Errorf("driver finished at t = %f, want exactly 0", drv.T())
	}
	if view.Opacity() != 0 {
		t.Errorf("opacity = %f, want 0 after the outro", view.Opacity())
	}
}

func TestDriverReversalMidFlight(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fade(view, Params{Duration: 500 * time.Millisecond}, WithScheduler(queue))

	drv := NewIntroDriver(tr)
	for i := 0; i < 10; i++ {
		drv.Update(frame)
		queue.RunTurn()
		view.Step(frame)
	}
	if drv.Done() {
		t.Fatal("sweep should still be in flight")
	}

	drv.Reverse()
	pump(t, drv, queue, view)

	if drv.T() != 0 {
		t.Errorf("reversed sweep finished at t = %f, want 0", drv.T())
	}
	view.Step(time.Second)
	if op := view.Opacity(); math.Abs(op) > 0.01 {
		t.Errorf("opacity = %f, want ~0 after the reversed outro", op)
	}
	if len(view.requests) != 2 {
		t.Errorf("reversal issued %d native animations, want 2", len(view.requests))
	}
}

func TestDriverReverseAfterDoneRestartsSweep(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fade(view, Params{Duration: 200 * time.Millisecond}, WithScheduler(queue))

	drv := NewIntroDriver(tr)
	pump(t, drv, queue, view)

	drv.Reverse()
	if drv.Done() {
		t.Fatal("Reverse should rearm a finished driver")
	}
	pump(t, drv, queue, view)

	if drv.T() != 0 {
		t.Errorf("second sweep finished at t = %f, want 0", drv.T())
	}
	if len(view.requests) != 2 {
		t.Errorf("got %d native animations across both sweeps, want 2", len(view.requests))
	}
}

func TestDriverConsumesDelayBeforeFirstTick(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fade(view, Params{Delay: 100 * time.Millisecond, Duration: 500 * time.Millisecond}, WithScheduler(queue))

	drv := NewIntroDriver(tr)
	drv.Update(50 * time.Millisecond)
	if len(view.requests) != 0 {
		t.Fatal("no tick should fire during the delay")
	}
	drv.Update(60 * time.Millisecond)
	if len(view.requests) != 1 {
		t.Fatalf("got %d requests after the delay elapsed, want 1", len(view.requests))
	}
	// The native request still carries the full duration; the delay was the
	// driver's to spend.
	if view.requests[0].Duration != 500*time.Millisecond {
		t.Errorf("request duration = %v, want the full 500ms", view.requests[0].Duration)
	}
}

func TestDriverZeroDurationFinishesImmediately(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	props := func(t float64) Definition {
		return Definition{OpacityDelta{Opacity: t}}
	}
	tr := AsSvelteTransition(view, 0, 0, Linear, props, WithScheduler(queue))

	drv := NewIntroDriver(tr)
	drv.Update(frame) // starting pair
	drv.Update(frame) // completion pair
	if !drv.Done() {
		t.Fatal("zero-duration sweep should finish on its second frame")
	}
	if drv.T() != 1 {
		t.Errorf("finished at t = %f, want 1", drv.T())
	}
}
