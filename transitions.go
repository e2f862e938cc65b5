package osier

import "time"

// DefaultDuration is used by the named transitions when no duration is
// given.
const DefaultDuration = 400 * time.Millisecond

// Params carries the knobs shared by every named transition. Zero values
// mean defaults: DefaultDuration, no delay, and the transition kind's own
// easing (Linear for Fade, EaseOut for the movement transitions).
type Params struct {
	Delay    time.Duration
	Duration time.Duration
	Easing   CubicBezier
}

func (p Params) durationOr(def time.Duration) time.Duration {
	if p.Duration == 0 {
		return def
	}
	return p.Duration
}

func (p Params) easingOr(def CubicBezier) CubicBezier {
	if p.Easing == (CubicBezier{}) {
		return def
	}
	return p.Easing
}

// Fade transitions the view's opacity between zero and its resting value.
// The resting opacity is captured once, here, so a view resting at 0.8 fades
// to 0.8 and not to fully opaque.
func Fade(view NativeView, p Params, opts ...TransitionOption) SvelteTransition {
	opacity := view.Opacity()
	props := func(t float64) Definition {
		return Definition{
			OpacityDelta{Opacity: t * opacity},
		}
	}
	return AsSvelteTransition(view, p.Delay, p.durationOr(DefaultDuration), p.easingOr(Linear), props, opts...)
}

// FlyParams configures Fly. X and Y are the offset, in device-independent
// units, the view sits at when fully transitioned out.
type FlyParams struct {
	Params
	X, Y float64
}

// Fly moves the view in from an offset while fading it. At progress 1 the
// view sits at its captured resting translation; at progress 0 it is
// displaced by (X, Y) from there and fully transparent.
func Fly(view NativeView, p FlyParams, opts ...TransitionOption) SvelteTransition {
	opacity := view.Opacity()
	baseX := view.TranslateX()
	baseY := view.TranslateY()
	props := func(t float64) Definition {
		return Definition{
			OpacityDelta{Opacity: t * opacity},
			TranslateDelta{
				X: baseX + (1-t)*p.X,
				Y: baseY + (1-t)*p.Y,
			},
		}
	}
	return AsSvelteTransition(view, p.Delay, p.durationOr(DefaultDuration), p.easingOr(EaseOut), props, opts...)
}

// Slide collapses the view vertically: its height scales toward zero while
// it shifts upward by half the scaled extent, so the collapse reads as a
// fold rather than a shrink about the center. The horizontal axis stays at
// baseline. The measured height is captured at construction; a view
// transitioned before its first layout pass measures 0 and degenerates to a
// pure scale.
func Slide(view NativeView, p Params, opts ...TransitionOption) SvelteTransition {
	height := view.EffectiveHeight()
	baseScaleX := view.ScaleX()
	baseScaleY := view.ScaleY()
	baseX := view.TranslateX()
	baseY := view.TranslateY()
	props := func(t float64) Definition {
		return Definition{
			ScaleDelta{
				X: baseScaleX,
				Y: t * baseScaleY,
			},
			TranslateDelta{
				X: baseX,
				Y: baseY - t*0.5*height,
			},
		}
	}
	return AsSvelteTransition(view, p.Delay, p.durationOr(DefaultDuration), p.easingOr(EaseOut), props, opts...)
}

// ScaleParams configures Scale. Start is the scale factor at progress 0;
// the default 0 collapses the view to a point.
type ScaleParams struct {
	Params
	Start float64
}

// Scale shrinks the view toward Start times its resting scale while fading
// it, growing back to the resting scale at progress 1.
func Scale(view NativeView, p ScaleParams, opts ...TransitionOption) SvelteTransition {
	opacity := view.Opacity()
	baseScaleX := view.ScaleX()
	baseScaleY := view.ScaleY()
	props := func(t float64) Definition {
		factor := p.Start + (1-p.Start)*t
		return Definition{
			OpacityDelta{Opacity: t * opacity},
			ScaleDelta{
				X: factor * baseScaleX,
				Y: factor * baseScaleY,
			},
		}
	}
	return AsSvelteTransition(view, p.Delay, p.durationOr(DefaultDuration), p.easingOr(EaseOut), props, opts...)
}
