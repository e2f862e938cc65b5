package osier

import (
	"time"

	"go.uber.org/zap"
)

// PropsFunc is a transition kind reduced to a pure function: the Definition
// the view should hold at visibility progress t, where 0 is fully
// transitioned out and 1 is the resting state. Fade, Fly, Slide and Scale
// each supply one; custom transitions supply their own.
type PropsFunc func(t float64) Definition

// ApplyFunc writes a Definition onto a view immediately. The default is
// ApplyDefinition.
type ApplyFunc func(view NativeView, def Definition)

// TickFunc receives the templating framework's per-frame progress pair. t is
// the framework's forward counter over the transition's lifetime and u is
// the complementary visibility progress; the two together encode direction.
type TickFunc func(t, u float64)

// SvelteTransition is the object shape the templating framework consumes: it
// schedules Delay itself, sweeps t over Duration, and calls Tick every
// frame. All visual work happens inside Tick; there is no CSS payload.
type SvelteTransition struct {
	Delay    time.Duration
	Duration time.Duration
	Tick     TickFunc
}

// DefaultEnterThreshold classifies the first tick: u above it means the
// element starts invisible, so the transition is entering.
const DefaultEnterThreshold = 0.5

type transitionConfig struct {
	apply          ApplyFunc
	scheduler      Scheduler
	enterThreshold float64
}

// TransitionOption adjusts how a transition applies properties and schedules
// playback.
type TransitionOption func(*transitionConfig)

// WithApplyFunc substitutes the function used for immediate property snaps,
// for hosts whose views carry properties ApplyDefinition does not know.
func WithApplyFunc(fn ApplyFunc) TransitionOption {
	return func(cfg *transitionConfig) {
		cfg.apply = fn
	}
}

// WithScheduler routes deferred playback through s instead of the package
// default queue. Tests and multi-window hosts use this to pump their own
// turns.
func WithScheduler(s Scheduler) TransitionOption {
	return func(cfg *transitionConfig) {
		cfg.scheduler = s
	}
}

// WithEnterThreshold overrides DefaultEnterThreshold for frameworks whose
// initial progress pairs sit closer to the middle.
func WithEnterThreshold(threshold float64) TransitionOption {
	return func(cfg *transitionConfig) {
		cfg.enterThreshold = threshold
	}
}

// AsSvelteTransition wraps a view and a property function into the
// transition contract a Svelte-style templating framework drives. The
// returned Tick owns the whole native-animation lifecycle for this element:
// it infers direction from the first progress pair, creates one native
// animation per uninterrupted run, and on mid-flight reversal cancels the
// old animation, masks the cancel snap-back, and creates a replacement that
// covers exactly the remaining fraction of the timeline.
//
// Tick must be called from the host's main loop; the state machine behind it
// is not safe for concurrent use. One AsSvelteTransition call serves one
// element for one mount/unmount cycle, matching how the templating framework
// invokes transition functions.
func AsSvelteTransition(view NativeView, delay, duration time.Duration, curve CubicBezier, props PropsFunc, opts ...TransitionOption) SvelteTransition {
	if view == nil {
		panic("osier: AsSvelteTransition requires a view")
	}
	if props == nil {
		panic("osier: AsSvelteTransition requires a props function")
	}
	cfg := transitionConfig{
		apply:          ApplyDefinition,
		scheduler:      DefaultScheduler(),
		enterThreshold: DefaultEnterThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	st := &tickState{
		transitionConfig: cfg,
		view:             view,
		duration:         duration,
		curve:            curve,
		props:            props,
	}
	return SvelteTransition{
		Delay:    delay,
		Duration: duration,
		Tick:     st.advance,
	}
}

// tickState is the per-element state machine behind a transition's Tick.
type tickState struct {
	transitionConfig

	view     NativeView
	duration time.Duration
	curve    CubicBezier
	props    PropsFunc

	direction Direction
	lastT     float64

	// anim is the live native handle, nil when none exists. It stays set
	// after natural completion; only a reversal discards it.
	anim    Animation
	pending *ScheduledTask
}

// advance is the TickFunc. Direction handling first, then animation
// reconciliation: after this call either a handle exists or this cycle was
// abandoned and the next tick retries.
func (s *tickState) advance(t, u float64) {
	switch s.direction {
	case DirectionUnknown:
		s.classify(t, u)
	case DirectionIn:
		if t < s.lastT {
			s.reverse(DirectionOut, t)
		}
	case DirectionOut:
		if t > s.lastT {
			s.reverse(DirectionIn, t)
		}
	}
	s.lastT = t

	if s.anim == nil {
		s.ensureAnimation(t, u)
	}
}

// classify commits the transition to a direction on its first tick. The
// complementary u decides, not t: frameworks differ in the t they hand an
// exiting element, but u reads as visibility in every variant. An entering
// element is snapped to its progress-0 definition immediately so it does not
// flash fully visible before the animation starts.
func (s *tickState) classify(t, u float64) {
	if u > s.enterThreshold {
		s.direction = DirectionIn
		def := s.props(0)
		s.view.BatchUpdate(func() {
			s.apply(s.view, def)
		})
	} else {
		s.direction = DirectionOut
	}
	Logger().Debug("transition classified",
		zap.Stringer("direction", s.direction),
		zap.Float64("t", t),
		zap.Float64("u", u))
}

// reverse flips the direction mid-flight. The live animation is cancelled,
// which snaps the view to the values it had when playback started; the snap
// is masked by re-applying the current-progress definition in the same batch
// scope, so no intermediate state reaches the screen. Deferred playback that
// has not fired yet is cancelled along with the handle.
func (s *tickState) reverse(dir Direction, t float64) {
	s.direction = dir
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	if s.anim != nil {
		s.anim.Cancel()
		s.anim = nil
	}
	def := s.props(t)
	s.view.BatchUpdate(func() {
		s.apply(s.view, def)
	})
	Logger().Debug("transition reversed",
		zap.Stringer("direction", dir),
		zap.Float64("t", t))
}

// ensureAnimation builds and starts the native animation covering the rest
// of the timeline from the current progress pair. Out plays synchronously;
// In is deferred one scheduler turn so it cannot race layout and measure
// passes still in flight for the current render.
func (s *tickState) ensureAnimation(t, u float64) {
	target := 1.0
	if s.direction == DirectionOut {
		target = 0
	}
	def := s.props(target)

	if !s.view.Realized() {
		// No native object to animate yet; land on the endpoint so the
		// element is in the right state whenever it is realized.
		s.view.BatchUpdate(func() {
			s.apply(s.view, def)
		})
		return
	}

	req := AnimationRequest{Target: def}
	switch s.direction {
	case DirectionIn:
		switch {
		case t <= 0:
			req.Curve = s.curve
			req.Duration = s.duration
		case t >= 1:
			// Nothing left of the timeline; a zero-duration request lands
			// on the target without slicing an empty range.
			req.Curve = s.curve
			req.Duration = 0
		default:
			req.Curve = s.curve.Slice(t, 1).Normalized()
			req.Duration = fractionOf(s.duration, 1-t)
		}
	case DirectionOut:
		// Visibility progress u drives the Out side: the animation covers
		// the elapsed fraction of the curve, played backward.
		switch {
		case u <= 0:
			req.Curve = s.curve
			req.Duration = 0
		case u >= 1:
			req.Curve = s.curve
			req.Duration = s.duration
		default:
			req.Curve = s.curve.Slice(0, u).Reversed().Normalized()
			req.Duration = fractionOf(s.duration, u)
		}
	}

	anim, err := s.view.CreateAnimation(req)
	if err != nil {
		// Abandon this cycle; the next tick retries with fresh progress.
		Logger().Debug("animation construction failed",
			zap.Stringer("direction", s.direction),
			zap.Error(err))
		return
	}
	s.anim = anim

	if s.direction == DirectionOut {
		s.play(anim)
		return
	}
	s.pending = s.scheduler.Schedule(func() {
		s.pending = nil
		if s.anim != anim {
			// Reversed or replaced before this turn came up.
			return
		}
		s.play(anim)
	})
}

func (s *tickState) play(anim Animation) {
	if err := anim.Play(); err != nil {
		Logger().Error("transition playback failed",
			zap.Stringer("direction", s.direction),
			zap.Error(err))
	}
}

// fractionOf scales a duration by a progress fraction.
func fractionOf(d time.Duration, f float64) time.Duration {
	return time.Duration(f * float64(d))
}
