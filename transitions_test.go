package osier

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// probeAt reads the definition a transition applies at a given progress by
// reversing into it: an entering transition masks the reversal snap with the
// definition at the reversal's t.
func probeAt(tr SvelteTransition, t float64) {
	tr.Tick(0, 1)
	tr.Tick(0.99, 0.01)
	tr.Tick(t, 1-t)
}

func TestFadeScalesRestingOpacity(t *testing.T) {
	view := newRecordingView()
	view.SetOpacity(0.8)
	queue := NewTurnQueue()
	tr := Fade(view, Params{Duration: time.Second}, WithScheduler(queue))

	tr.Tick(0, 1)
	if view.Opacity() != 0 {
		t.Errorf("opacity at progress 0 = %f, want 0", view.Opacity())
	}
	// The target is the captured resting value, not full opacity.
	want := Definition{OpacityDelta{Opacity: 0.8}}
	if diff := cmp.Diff(want, view.requests[0].Target); diff != "" {
		t.Errorf("target mismatch (-want +got):\n%s", diff)
	}
}

func TestFlyMidpointOffset(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Fly(view, FlyParams{
		Params: Params{Duration: time.Second},
		X:      100,
	}, WithScheduler(queue))

	probeAt(tr, 0.5)

	// Halfway in, half the offset remains.
	if got := view.TranslateX(); got != 50 {
		t.Errorf("translateX at progress 0.5 = %f, want 50", got)
	}
	if got := view.TranslateY(); got != 0 {
		t.Errorf("translateY at progress 0.5 = %f, want 0", got)
	}
	if got := view.Opacity(); got != 0.5 {
		t.Errorf("opacity at progress 0.5 = %f, want 0.5", got)
	}
}

func TestFlyStartsDisplacedAndRestsAtBaseline(t *testing.T) {
	view := newRecordingView()
	view.SetTranslateX(10)
	view.SetTranslateY(5)
	queue := NewTurnQueue()
	tr := Fly(view, FlyParams{
		Params: Params{Duration: time.Second},
		X:      100,
		Y:      -40,
	}, WithScheduler(queue))

	tr.Tick(0, 1)

	if got := view.TranslateX(); got != 110 {
		t.Errorf("translateX at progress 0 = %f, want 110", got)
	}
	if got := view.TranslateY(); got != -35 {
		t.Errorf("translateY at progress 0 = %f, want -35", got)
	}
	want := Definition{
		OpacityDelta{Opacity: 1},
		TranslateDelta{X: 10, Y: 5},
	}
	if diff := cmp.Diff(want, view.requests[0].Target); diff != "" {
		t.Errorf("resting target mismatch (-want +got):\n%s", diff)
	}
}

func TestSlideCollapseShape(t *testing.T) {
	view := newRecordingView()
	view.SetEffectiveHeight(200)
	queue := NewTurnQueue()
	tr := Slide(view, Params{Duration: time.Second}, WithScheduler(queue))

	probeAt(tr, 0.25)

	if got := view.ScaleY(); got != 0.25 {
		t.Errorf("scaleY at progress 0.25 = %f, want 0.25", got)
	}
	if got := view.TranslateY(); got != -25 {
		t.Errorf("translateY at progress 0.25 = %f, want -25", got)
	}
	// The horizontal axis stays at baseline.
	if got := view.ScaleX(); got != 1 {
		t.Errorf("scaleX = %f, want the baseline 1", got)
	}
	if got := view.TranslateX(); got != 0 {
		t.Errorf("translateX = %f, want the baseline 0", got)
	}
}

func TestSlideUnmeasuredViewDegeneratesToScale(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Slide(view, Params{Duration: time.Second}, WithScheduler(queue))

	probeAt(tr, 0.5)

	if got := view.ScaleY(); got != 0.5 {
		t.Errorf("scaleY = %f, want 0.5", got)
	}
	if got := view.TranslateY(); got != 0 {
		t.Errorf("translateY = %f, want 0 when nothing was measured", got)
	}
}

func TestScaleShrinksTowardStart(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Scale(view, ScaleParams{
		Params: Params{Duration: time.Second},
		Start:  0.5,
	}, WithScheduler(queue))

	probeAt(tr, 0.4)

	wantFactor := 0.5 + 0.5*0.4
	if got := view.ScaleX(); math.Abs(got-wantFactor) > 1e-9 {
		t.Errorf("scaleX at progress 0.4 = %f, want %f", got, wantFactor)
	}
	if got := view.ScaleY(); math.Abs(got-wantFactor) > 1e-9 {
		t.Errorf("scaleY at progress 0.4 = %f, want %f", got, wantFactor)
	}
	if got := view.Opacity(); got != 0.4 {
		t.Errorf("opacity at progress 0.4 = %f, want 0.4", got)
	}
}

func TestScaleDefaultStartCollapsesToPoint(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()
	tr := Scale(view, ScaleParams{Params: Params{Duration: time.Second}}, WithScheduler(queue))

	tr.Tick(0, 1)

	if got := view.ScaleX(); got != 0 {
		t.Errorf("scaleX at progress 0 = %f, want 0", got)
	}
	if got := view.ScaleY(); got != 0 {
		t.Errorf("scaleY at progress 0 = %f, want 0", got)
	}
}

func TestNamedTransitionDefaults(t *testing.T) {
	view := newRecordingView()
	queue := NewTurnQueue()

	fade := Fade(view, Params{}, WithScheduler(queue))
	if fade.Duration != DefaultDuration {
		t.Errorf("fade duration = %v, want %v", fade.Duration, DefaultDuration)
	}
	fade.Tick(0, 1)
	if got := view.requests[0].Curve; got != Linear {
		t.Errorf("fade curve = %+v, want Linear", got)
	}

	view = newRecordingView()
	fly := Fly(view, FlyParams{X: 50}, WithScheduler(queue))
	if fly.Duration != DefaultDuration {
		t.Errorf("fly duration = %v, want %v", fly.Duration, DefaultDuration)
	}
	fly.Tick(0, 1)
	if got := view.requests[0].Curve; got != EaseOut {
		t.Errorf("fly curve = %+v, want EaseOut", got)
	}

	view = newRecordingView()
	slide := Slide(view, Params{}, WithScheduler(queue))
	slide.Tick(0, 1)
	if got := view.requests[0].Curve; got != EaseOut {
		t.Errorf("slide curve = %+v, want EaseOut", got)
	}

	// An explicit easing wins over the kind's default.
	view = newRecordingView()
	custom := Fade(view, Params{Easing: EaseInOut}, WithScheduler(queue))
	custom.Tick(0, 1)
	if got := view.requests[0].Curve; got != EaseInOut {
		t.Errorf("fade with explicit easing = %+v, want EaseInOut", got)
	}
}
