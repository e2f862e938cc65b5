package osier

import (
	"errors"
	"time"
)

// HeadlessView is an in-memory NativeView: plain property storage, a batch
// counter, and a list of animations it steps itself. Tests drive transitions
// against it without a window, and it doubles as a reference for what a real
// toolkit binding must provide.
type HeadlessView struct {
	opacity    float64
	translateX float64
	translateY float64
	scaleX     float64
	scaleY     float64
	rotation   float64
	background Color

	height   float64
	realized bool
	disposed bool

	batchDepth int
	anims      []*TweenAnimation
}

// NewHeadlessView returns a realized view at the property resting state:
// opacity 1, scale 1, everything else zero.
func NewHeadlessView() *HeadlessView {
	return &HeadlessView{
		opacity:  1,
		scaleX:   1,
		scaleY:   1,
		realized: true,
	}
}

func (v *HeadlessView) Opacity() float64          { return v.opacity }
func (v *HeadlessView) SetOpacity(val float64)    { v.opacity = val }
func (v *HeadlessView) TranslateX() float64       { return v.translateX }
func (v *HeadlessView) SetTranslateX(val float64) { v.translateX = val }
func (v *HeadlessView) TranslateY() float64       { return v.translateY }
func (v *HeadlessView) SetTranslateY(val float64) { v.translateY = val }
func (v *HeadlessView) ScaleX() float64           { return v.scaleX }
func (v *HeadlessView) SetScaleX(val float64)     { v.scaleX = val }
func (v *HeadlessView) ScaleY() float64           { return v.scaleY }
func (v *HeadlessView) SetScaleY(val float64)     { v.scaleY = val }
func (v *HeadlessView) Rotation() float64         { return v.rotation }
func (v *HeadlessView) SetRotation(deg float64)   { v.rotation = deg }
func (v *HeadlessView) BackgroundColor() Color    { return v.background }
func (v *HeadlessView) SetBackgroundColor(c Color) {
	v.background = c
}

// EffectiveHeight returns the measured height set via SetEffectiveHeight,
// 0 until then, the same as a view before its first layout pass.
func (v *HeadlessView) EffectiveHeight() float64 { return v.height }

// SetEffectiveHeight simulates a layout pass measuring the view.
func (v *HeadlessView) SetEffectiveHeight(h float64) { v.height = h }

// BatchUpdate runs fn inside the batch scope. Headless views have no render
// pipeline to coalesce for, so this only tracks depth; InBatch lets tests
// assert writes happened inside a scope.
func (v *HeadlessView) BatchUpdate(fn func()) {
	v.batchDepth++
	fn()
	v.batchDepth--
}

// InBatch reports whether a BatchUpdate scope is currently open.
func (v *HeadlessView) InBatch() bool {
	return v.batchDepth > 0
}

// Realized reports whether the simulated native object exists. New views
// start realized; SetRealized(false) simulates a view used before mounting.
func (v *HeadlessView) Realized() bool {
	return v.realized && !v.disposed
}

// SetRealized toggles the simulated mount state.
func (v *HeadlessView) SetRealized(realized bool) {
	v.realized = realized
}

// Dispose marks the view dead: it is no longer realized, animation
// construction fails, and stepping stops. Mirrors an element removed from
// the native tree mid-transition.
func (v *HeadlessView) Dispose() {
	v.disposed = true
	v.anims = nil
}

// Disposed reports whether Dispose was called.
func (v *HeadlessView) Disposed() bool {
	return v.disposed
}

// CreateAnimation builds a TweenAnimation the view will step itself. The
// animation is registered but not started.
func (v *HeadlessView) CreateAnimation(req AnimationRequest) (Animation, error) {
	if v.disposed {
		return nil, errors.New("osier: view is disposed")
	}
	anim := NewTweenAnimation(v, req)
	v.RegisterAnimation(anim)
	return anim, nil
}

// RegisterAnimation adds anim to the view's step list if it is not already
// there. Play calls this, so handles dropped after finishing re-register
// when replayed.
func (v *HeadlessView) RegisterAnimation(anim *TweenAnimation) {
	for _, existing := range v.anims {
		if existing == anim {
			return
		}
	}
	v.anims = append(v.anims, anim)
}

// Step advances every registered animation by dt. Animations that are no
// longer playing afterward are dropped; a replay re-registers them.
func (v *HeadlessView) Step(dt time.Duration) {
	if v.disposed {
		return
	}
	kept := v.anims[:0]
	for _, anim := range v.anims {
		anim.Step(dt)
		if anim.IsPlaying() {
			kept = append(kept, anim)
		}
	}
	v.anims = kept
}

// Animations returns the number of animations on the step list.
func (v *HeadlessView) Animations() int {
	return len(v.anims)
}
