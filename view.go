package osier

import "time"

// NativeView is the surface a native view toolkit exposes to transitions:
// current values for every animatable property, immediate setters for the
// same, and an animation factory. HeadlessView implements it in-memory and
// the ebitenview package implements it on screen; a binding to a real mobile
// toolkit would satisfy it the same way.
//
// Transitions read the property getters once, at construction time, to
// capture the view's resting state. Setters apply instantly, with no
// animation.
type NativeView interface {
	Opacity() float64
	SetOpacity(v float64)

	TranslateX() float64
	SetTranslateX(v float64)
	TranslateY() float64
	SetTranslateY(v float64)

	ScaleX() float64
	SetScaleX(v float64)
	ScaleY() float64
	SetScaleY(v float64)

	// Rotation is in degrees clockwise.
	Rotation() float64
	SetRotation(deg float64)

	BackgroundColor() Color
	SetBackgroundColor(c Color)

	// EffectiveHeight is the measured layout height in device-independent
	// units, 0 before the first layout pass.
	EffectiveHeight() float64

	// BatchUpdate runs fn inside the toolkit's property batch scope: every
	// setter call inside fn becomes visible in the same render pass. Used to
	// mask the snap-back a cancelled animation leaves behind.
	BatchUpdate(fn func())

	// CreateAnimation builds a playable animation from a request without
	// starting it. Construction can fail (view disposed, toolkit rejected a
	// property); the returned error carries the reason.
	CreateAnimation(req AnimationRequest) (Animation, error)

	// Realized reports whether the native backing object exists yet. An
	// unrealized view cannot animate; transitions snap it to the endpoint
	// instead.
	Realized() bool
}

// AnimationRequest describes one single-shot native animation: drive the
// view's current property values to Target over Duration along Curve.
//
// Delay is the wait before playback once Play is called. Transitions leave
// it zero; the templating framework schedules its own delay before the first
// tick, and re-applying it here would double it.
type AnimationRequest struct {
	Target   Definition
	Duration time.Duration
	Delay    time.Duration
	Curve    CubicBezier
}

// Animation is a playable native animation handle.
//
// Cancel on a playing animation snaps the animated properties back to the
// values they had when playback started; that snap is the observed native
// behavior transitions must mask. Cancel before Play, or after natural
// completion, changes nothing. A cancelled handle may be played again; it
// restarts from the view's then-current values.
type Animation interface {
	Play() error
	Cancel()
	IsPlaying() bool
}
