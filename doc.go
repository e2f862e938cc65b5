// Package osier lets a Svelte-style templating framework drive native view
// animations: the framework supplies per-frame transition progress, osier
// turns it into whole native animations with direction inference, mid-flight
// reversal and interruption masking.
//
// A tick-driven templating framework reports transition progress as a pair
// (t, u) many times per second. Native view toolkits animate the opposite
// way: one declarative request (target values, duration, timing curve) that
// the platform plays by itself. Osier reconciles the two: it classifies the
// transition's direction from the first pair, issues a single native
// animation covering the rest of the timeline, and when the framework
// reverses mid-flight it cancels the running animation, hides the property
// snap-back native cancellation causes, and issues a replacement that covers
// exactly the remaining fraction of both the duration and the curve.
//
// # Transitions
//
// The named factories mirror the templating framework's built-ins. Each
// captures the view's resting values once and returns the
// {delay, duration, tick} contract the framework consumes:
//
//	view := osier.NewHeadlessView()
//	tr := osier.Fade(view, osier.Params{Duration: 300 * time.Millisecond})
//	tr.Tick(0, 1) // framework ticks entering progress
//
// Custom transitions supply a progress function to [AsSvelteTransition]:
//
//	props := func(t float64) osier.Definition {
//		return osier.Definition{osier.RotationDelta{Degrees: (1 - t) * 90}}
//	}
//	tr := osier.AsSvelteTransition(view, 0, time.Second, osier.EaseInOut, props)
//
// # Curves
//
// [CubicBezier] carries the timing math the adapter needs: parameter
// evaluation, sub-curve extraction for resumed animations, time reversal and
// unit-box normalization. The CSS presets are package variables (Linear,
// Ease, EaseIn, EaseOut, EaseInOut) and [EasingByName] resolves the names
// used in markup.
//
// # Hosts
//
// [NativeView] is the toolkit surface transitions drive. [HeadlessView]
// implements it in-memory for tests and windowless hosts, playing requests
// with gween-backed [TweenAnimation] values. The osier/ebitenview package
// implements it on screen for [Ebitengine], and [Driver] stands in for the
// framework scheduler in demos and tests.
//
// Everything here is single-threaded: tick, step and scheduler turns all run
// on the host's main loop.
//
// [Ebitengine]: https://ebitengine.org
package osier
