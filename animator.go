package osier

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
)

// tweenChannel animates one scalar property. start is the value captured at
// playback start, the value Cancel snaps back to.
type tweenChannel struct {
	tween *gween.Tween
	write func(float64)
	start float64
}

// TweenAnimation is the in-process native animation: an Animation that
// drives a view's properties toward a request's Target with one gween tween
// per scalar, paced by the request's curve. HeadlessView and ebitenview both
// hand these out from CreateAnimation.
//
// The host steps it from its frame loop. Playback state:
//
//	Play     captures the view's current values and starts the delay clock
//	Step     advances the tweens by a frame's elapsed time
//	Cancel   stops playback and snaps properties back to the captured values
//
// A finished or cancelled animation can be played again; it restarts from
// the view's then-current values. There is no global animation manager;
// whoever created the animation steps it.
type TweenAnimation struct {
	view NativeView
	req  AnimationRequest

	channels []tweenChannel
	delay    time.Duration
	playing  bool
	finished bool
}

// NewTweenAnimation builds the animation without starting it.
func NewTweenAnimation(view NativeView, req AnimationRequest) *TweenAnimation {
	if view == nil {
		panic("osier: NewTweenAnimation requires a view")
	}
	return &TweenAnimation{view: view, req: req}
}

// animationHost is satisfied by views that step the animations they created.
// Play re-registers through it, so hosts are free to drop finished or
// cancelled handles from their step lists.
type animationHost interface {
	RegisterAnimation(a *TweenAnimation)
}

// Play arms the animation: current property values are captured as the
// snap-back baseline and the delay clock starts. A request with no duration
// and no delay lands on its target immediately, inside one batch scope,
// before Play returns. Playing an animation that is already playing is an
// error.
func (a *TweenAnimation) Play() error {
	if a.playing {
		return errors.New("osier: animation already playing")
	}
	a.finished = false
	a.delay = a.req.Delay

	if a.req.Duration <= 0 && a.delay <= 0 {
		a.channels = nil
		a.view.BatchUpdate(func() {
			ApplyDefinition(a.view, a.req.Target)
		})
		a.finished = true
		return nil
	}

	a.channels = buildChannels(a.view, a.req)
	a.playing = true
	if h, ok := a.view.(animationHost); ok {
		h.RegisterAnimation(a)
	}
	return nil
}

// Cancel stops a playing animation and snaps every animated property back to
// its value at playback start. Cancel before Play, or after the animation
// finished on its own, changes nothing.
func (a *TweenAnimation) Cancel() {
	if !a.playing {
		return
	}
	a.playing = false
	for i := range a.channels {
		a.channels[i].write(a.channels[i].start)
	}
}

// IsPlaying reports whether the animation is between Play and its natural or
// cancelled end. The delay phase counts as playing.
func (a *TweenAnimation) IsPlaying() bool {
	return a.playing
}

// Finished reports whether the animation ran to natural completion.
func (a *TweenAnimation) Finished() bool {
	return a.finished
}

// Step advances playback by a frame's elapsed time. Does nothing unless the
// animation is playing. Frame time spent finishing the delay spills into the
// first animated step so a long frame does not stall progress.
func (a *TweenAnimation) Step(dt time.Duration) {
	if !a.playing {
		return
	}
	if a.delay > 0 {
		a.delay -= dt
		if a.delay >= 0 {
			return
		}
		dt = -a.delay
		a.delay = 0
	}

	sec := float32(dt.Seconds())
	allDone := true
	for i := range a.channels {
		val, finished := a.channels[i].tween.Update(sec)
		a.channels[i].write(float64(val))
		if !finished {
			allDone = false
		}
	}
	if allDone {
		a.playing = false
		a.finished = true
	}
}

// buildChannels expands the request's deltas into per-scalar tweens, reading
// each property's current value as the tween start.
func buildChannels(view NativeView, req AnimationRequest) []tweenChannel {
	fn := req.Curve.TweenFunc()
	dur := float32(req.Duration.Seconds())

	channels := make([]tweenChannel, 0, len(req.Target)*2)
	add := func(from, to float64, write func(float64)) {
		channels = append(channels, tweenChannel{
			tween: gween.New(float32(from), float32(to), dur, fn),
			write: write,
			start: from,
		})
	}

	for _, d := range req.Target {
		switch d := d.(type) {
		case OpacityDelta:
			add(view.Opacity(), d.Opacity, view.SetOpacity)
		case TranslateDelta:
			add(view.TranslateX(), d.X, view.SetTranslateX)
			add(view.TranslateY(), d.Y, view.SetTranslateY)
		case ScaleDelta:
			add(view.ScaleX(), d.X, view.SetScaleX)
			add(view.ScaleY(), d.Y, view.SetScaleY)
		case RotationDelta:
			add(view.Rotation(), d.Degrees, view.SetRotation)
		case BackgroundColorDelta:
			from := view.BackgroundColor()
			add(from.R, d.Color.R, func(v float64) {
				c := view.BackgroundColor()
				c.R = v
				view.SetBackgroundColor(c)
			})
			add(from.G, d.Color.G, func(v float64) {
				c := view.BackgroundColor()
				c.G = v
				view.SetBackgroundColor(c)
			})
			add(from.B, d.Color.B, func(v float64) {
				c := view.BackgroundColor()
				c.B = v
				view.SetBackgroundColor(c)
			})
			add(from.A, d.Color.A, func(v float64) {
				c := view.BackgroundColor()
				c.A = v
				view.SetBackgroundColor(c)
			})
		default:
			panic(fmt.Sprintf("osier: unhandled property delta %T", d))
		}
	}
	return channels
}
