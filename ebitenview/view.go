// Package ebitenview hosts osier transitions on an Ebitengine screen. A View
// is one animatable rectangle, solid-colored or textured, implementing
// osier.NativeView; a Stage owns a set of views and runs the per-frame work a
// native toolkit would, scheduler turns first, then animation stepping.
//
// Views follow the toolkit realization model: a freshly constructed View is
// unrealized and cannot animate until a Stage adds it, the same way a mobile
// view cannot animate before it is mounted in the native tree.
package ebitenview

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/osier"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns the lazily-initialized 1x1 white image solid
// views scale up from. No sync.Once; ebitenview is main-loop-confined like
// the rest of the module.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// View is one rectangle on the screen. Layout fields are plain and public;
// the animatable properties behind osier.NativeView are methods so
// transitions and animations can drive them.
type View struct {
	// Image is an optional texture. Nil draws a solid quad in the view's
	// background color; non-nil draws the image stretched to the view
	// rectangle and tinted only by opacity.
	Image *ebiten.Image

	// X, Y position the view's top-left corner before any animated
	// translation. Width and Height are the layout extent.
	X, Y          float64
	Width, Height float64

	opacity    float64
	translateX float64
	translateY float64
	scaleX     float64
	scaleY     float64
	rotation   float64
	background osier.Color

	realized bool
	anims    []*osier.TweenAnimation
}

// New returns an unrealized view at the property resting state: opacity 1,
// scale 1, no translation. Add it to a Stage to realize it.
func New(x, y, width, height float64, background osier.Color) *View {
	return &View{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		opacity:    1,
		scaleX:     1,
		scaleY:     1,
		background: background,
	}
}

func (v *View) Opacity() float64          { return v.opacity }
func (v *View) SetOpacity(val float64)    { v.opacity = val }
func (v *View) TranslateX() float64       { return v.translateX }
func (v *View) SetTranslateX(val float64) { v.translateX = val }
func (v *View) TranslateY() float64       { return v.translateY }
func (v *View) SetTranslateY(val float64) { v.translateY = val }
func (v *View) ScaleX() float64           { return v.scaleX }
func (v *View) SetScaleX(val float64)     { v.scaleX = val }
func (v *View) ScaleY() float64           { return v.scaleY }
func (v *View) SetScaleY(val float64)     { v.scaleY = val }
func (v *View) Rotation() float64         { return v.rotation }
func (v *View) SetRotation(deg float64)   { v.rotation = deg }
func (v *View) BackgroundColor() osier.Color {
	return v.background
}
func (v *View) SetBackgroundColor(c osier.Color) {
	v.background = c
}

// EffectiveHeight is the layout height. Ebitengine views are measured at
// construction, so this is simply Height.
func (v *View) EffectiveHeight() float64 { return v.Height }

// BatchUpdate runs fn immediately. Ebitengine reads properties only when
// Draw runs, so every write within a frame already lands in the same render
// pass; there is no batch to open.
func (v *View) BatchUpdate(fn func()) { fn() }

// Realized reports whether the view has been added to a Stage.
func (v *View) Realized() bool { return v.realized }

// CreateAnimation builds a TweenAnimation the view steps each frame. The
// animation is registered but not started.
func (v *View) CreateAnimation(req osier.AnimationRequest) (osier.Animation, error) {
	if !v.realized {
		return nil, errors.New("ebitenview: view is not on a stage")
	}
	anim := osier.NewTweenAnimation(v, req)
	v.RegisterAnimation(anim)
	return anim, nil
}

// RegisterAnimation adds anim to the view's step list if it is not already
// there. TweenAnimation.Play calls this, so handles dropped after finishing
// re-register when replayed.
func (v *View) RegisterAnimation(anim *osier.TweenAnimation) {
	for _, existing := range v.anims {
		if existing == anim {
			return
		}
	}
	v.anims = append(v.anims, anim)
}

// Step advances every registered animation by dt and drops the ones no
// longer playing. The Stage calls this once per frame.
func (v *View) Step(dt time.Duration) {
	kept := v.anims[:0]
	for _, anim := range v.anims {
		anim.Step(dt)
		if anim.IsPlaying() {
			kept = append(kept, anim)
		}
	}
	v.anims = kept
}

// Draw renders the view onto screen: the texture, or a white pixel scaled to
// the view rectangle, transformed about the rectangle's center and tinted
// with premultiplied alpha. Fully transparent and unrealized views draw
// nothing.
func (v *View) Draw(screen *ebiten.Image) {
	if !v.realized || v.opacity <= 0 {
		return
	}

	img := v.Image
	if img == nil {
		img = ensureWhitePixel()
	}
	bounds := img.Bounds()
	srcW := float64(bounds.Dx())
	srcH := float64(bounds.Dy())
	if srcW == 0 || srcH == 0 {
		return
	}

	var op ebiten.DrawImageOptions

	// Source to view rectangle, then the animated transform about the
	// rectangle's center, then layout position plus animated translation.
	op.GeoM.Scale(v.Width/srcW, v.Height/srcH)
	op.GeoM.Translate(-v.Width/2, -v.Height/2)
	op.GeoM.Scale(v.scaleX, v.scaleY)
	op.GeoM.Rotate(v.rotation * math.Pi / 180)
	op.GeoM.Translate(v.Width/2, v.Height/2)
	op.GeoM.Translate(v.X+v.translateX, v.Y+v.translateY)

	if v.Image == nil {
		c := v.background
		a := float32(c.A * v.opacity)
		op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	} else {
		a := float32(v.opacity)
		op.ColorScale.Scale(a, a, a, a)
	}

	screen.DrawImage(img, &op)
}
