package osier

import "testing"

func TestApplyDefinitionWritesEveryKind(t *testing.T) {
	view := NewHeadlessView()
	bg := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}

	ApplyDefinition(view, Definition{
		OpacityDelta{Opacity: 0.5},
		TranslateDelta{X: 12, Y: -7},
		ScaleDelta{X: 2, Y: 0.5},
		RotationDelta{Degrees: 90},
		BackgroundColorDelta{Color: bg},
	})

	if view.Opacity() != 0.5 {
		t.Errorf("opacity = %f, want 0.5", view.Opacity())
	}
	if view.TranslateX() != 12 || view.TranslateY() != -7 {
		t.Errorf("translate = (%f, %f), want (12, -7)", view.TranslateX(), view.TranslateY())
	}
	if view.ScaleX() != 2 || view.ScaleY() != 0.5 {
		t.Errorf("scale = (%f, %f), want (2, 0.5)", view.ScaleX(), view.ScaleY())
	}
	if view.Rotation() != 90 {
		t.Errorf("rotation = %f, want 90", view.Rotation())
	}
	if view.BackgroundColor() != bg {
		t.Errorf("background = %+v, want %+v", view.BackgroundColor(), bg)
	}
}

func TestApplyDefinitionEmptyIsNoOp(t *testing.T) {
	view := NewHeadlessView()
	view.SetOpacity(0.3)

	ApplyDefinition(view, nil)
	ApplyDefinition(view, Definition{})

	if view.Opacity() != 0.3 {
		t.Errorf("opacity = %f, want untouched 0.3", view.Opacity())
	}
}

// strayDelta stands in for a delta kind added without updating the appliers.
type strayDelta struct{}

func (strayDelta) isDelta() {}

func TestApplyDefinitionPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown delta kind should panic")
		}
	}()
	ApplyDefinition(NewHeadlessView(), Definition{strayDelta{}})
}
