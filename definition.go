package osier

import "fmt"

// PropertyDelta is one animatable property target. The set of
// implementations is closed: appliers switch over every kind, so a view
// toolkit that handles all of them handles every definition this package can
// produce.
type PropertyDelta interface {
	isDelta()
}

// OpacityDelta targets the view's opacity.
type OpacityDelta struct {
	Opacity float64
}

// TranslateDelta targets the view's translation offset, in device-independent
// units relative to the layout position.
type TranslateDelta struct {
	X, Y float64
}

// ScaleDelta targets the view's scale factors. 1 is unscaled.
type ScaleDelta struct {
	X, Y float64
}

// RotationDelta targets the view's rotation, in degrees clockwise.
type RotationDelta struct {
	Degrees float64
}

// BackgroundColorDelta targets the view's background color.
type BackgroundColorDelta struct {
	Color Color
}

func (OpacityDelta) isDelta()         {}
func (TranslateDelta) isDelta()       {}
func (ScaleDelta) isDelta()           {}
func (RotationDelta) isDelta()        {}
func (BackgroundColorDelta) isDelta() {}

// Definition is the property end-state a transition wants at one progress
// value. Transition functions build a fresh Definition per evaluation; a
// Definition names only the properties its transition kind animates, never
// the full property set.
type Definition []PropertyDelta

// ApplyDefinition writes every delta in def onto view immediately, without
// animating. It is the default apply function for transitions; hosts with an
// extended property set substitute their own via WithApplyFunc.
func ApplyDefinition(view NativeView, def Definition) {
	for _, d := range def {
		switch d := d.(type) {
		case OpacityDelta:
			view.SetOpacity(d.Opacity)
		case TranslateDelta:
			view.SetTranslateX(d.X)
			view.SetTranslateY(d.Y)
		case ScaleDelta:
			view.SetScaleX(d.X)
			view.SetScaleY(d.Y)
		case RotationDelta:
			view.SetRotation(d.Degrees)
		case BackgroundColorDelta:
			view.SetBackgroundColor(d.Color)
		default:
			panic(fmt.Sprintf("osier: unhandled property delta %T", d))
		}
	}
}
