package osier

import (
	"math"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// CubicBezier is a cubic Bezier timing curve. The time coordinate runs along
// X and the progress output along Y. Curves are immutable values; Slice,
// Reversed and Normalized return fresh curves and never mutate the receiver.
type CubicBezier struct {
	P0, P1, P2, P3 Vec2
}

// NewCubicBezier returns the curve with inner control points (x1, y1) and
// (x2, y2) and endpoints fixed at (0, 0) and (1, 1), the quadruple form CSS
// and native animation APIs use.
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	return CubicBezier{
		P0: Vec2{0, 0},
		P1: Vec2{x1, y1},
		P2: Vec2{x2, y2},
		P3: Vec2{1, 1},
	}
}

// Preset timing curves, the standard CSS quadruples.
var (
	Linear    = NewCubicBezier(0, 0, 1, 1)
	Ease      = NewCubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = NewCubicBezier(0.42, 0, 1, 1)
	EaseOut   = NewCubicBezier(0, 0, 0.58, 1)
	EaseInOut = NewCubicBezier(0.42, 0, 0.58, 1)
)

// Easings maps the easing names accepted in transition parameters to their
// preset curves.
var Easings = map[string]CubicBezier{
	"linear":    Linear,
	"ease":      Ease,
	"easeIn":    EaseIn,
	"easeOut":   EaseOut,
	"easeInOut": EaseInOut,
}

// EasingByName looks up a preset curve. Unknown names fall back to Linear so
// a typo in markup degrades the motion instead of breaking the transition;
// the miss is logged at warn level.
func EasingByName(name string) CubicBezier {
	if c, ok := Easings[name]; ok {
		return c
	}
	Logger().Warn("unknown easing name, using linear", zap.String("name", name))
	return Linear
}

// --- Parameter-space evaluation ---

// Value returns the curve's progress coordinate at Bezier parameter t.
//
// Slice, Reversed and Normalized all compose in parameter space, so their
// endpoint identities hold for Value exactly. Playback engines that need
// progress as a function of elapsed time use At instead, which solves the
// time axis first.
func (c CubicBezier) Value(t float64) float64 {
	u := 1 - t
	return u*u*u*c.P0.Y + 3*u*u*t*c.P1.Y + 3*u*t*t*c.P2.Y + t*t*t*c.P3.Y
}

// timeAt returns the curve's time coordinate at parameter t.
func (c CubicBezier) timeAt(t float64) float64 {
	u := 1 - t
	return u*u*u*c.P0.X + 3*u*u*t*c.P1.X + 3*u*t*t*c.P2.X + t*t*t*c.P3.X
}

// timeSlope returns d(time)/dt at parameter t.
func (c CubicBezier) timeSlope(t float64) float64 {
	u := 1 - t
	return 3*u*u*(c.P1.X-c.P0.X) + 6*u*t*(c.P2.X-c.P1.X) + 3*t*t*(c.P3.X-c.P2.X)
}

// --- Curve surgery ---

// Slice returns the sub-curve covering the parameter range [t0, t1], used to
// resume an interrupted animation over just its remaining (or elapsed)
// fraction. The result's endpoints land exactly on the original curve:
//
//	Slice(t0, t1).Value(0) == Value(t0)
//	Slice(t0, t1).Value(1) == Value(t1)
//
// Panics if t0 >= t1. A zero-length range has no control polygon; callers
// branch around that boundary before slicing.
func (c CubicBezier) Slice(t0, t1 float64) CubicBezier {
	if t0 >= t1 {
		panic("osier: CubicBezier.Slice requires t0 < t1")
	}
	return CubicBezier{
		P0: c.blossom(t0, t0, t0),
		P1: c.blossom(t0, t0, t1),
		P2: c.blossom(t0, t1, t1),
		P3: c.blossom(t1, t1, t1),
	}
}

// blossom evaluates the curve's polar form f(a, b, t). The control points of
// the sub-curve over [t0, t1] are the blossom values with t0 and t1 taken
// with multiplicities 3, 2:1, 1:2 and 3.
func (c CubicBezier) blossom(a, b, t float64) Vec2 {
	p01 := c.P0.Lerp(c.P1, a)
	p12 := c.P1.Lerp(c.P2, a)
	p23 := c.P2.Lerp(c.P3, a)
	q0 := p01.Lerp(p12, b)
	q1 := p12.Lerp(p23, b)
	return q0.Lerp(q1, t)
}

// Reversed returns the curve played backward: control points in reverse
// order, time mirrored across the curve's own span. Reversed().Value(s)
// equals Value(1-s) for every s.
func (c CubicBezier) Reversed() CubicBezier {
	span := c.P0.X + c.P3.X
	return CubicBezier{
		P0: Vec2{span - c.P3.X, c.P3.Y},
		P1: Vec2{span - c.P2.X, c.P2.Y},
		P2: Vec2{span - c.P1.X, c.P1.Y},
		P3: Vec2{span - c.P0.X, c.P0.Y},
	}
}

// Normalized rescales both axes onto the unit box so the curve starts at
// (0, 0) and ends at (1, 1). Slicing and reversing yield curves over partial
// spans, while native animation APIs want unit timing curves; the rescale
// also absorbs the floating-point drift those compositions accumulate.
// An axis with zero span is shifted to the origin but left unscaled.
func (c CubicBezier) Normalized() CubicBezier {
	sx := c.P3.X - c.P0.X
	sy := c.P3.Y - c.P0.Y
	if math.Abs(sx) < 1e-12 {
		sx = 1
	}
	if math.Abs(sy) < 1e-12 {
		sy = 1
	}
	norm := func(p Vec2) Vec2 {
		return Vec2{X: (p.X - c.P0.X) / sx, Y: (p.Y - c.P0.Y) / sy}
	}
	return CubicBezier{norm(c.P0), norm(c.P1), norm(c.P2), norm(c.P3)}
}

// --- Time-domain evaluation ---

// Solver constants follow the widely used bezier-easing implementation:
// Newton while the slope is trustworthy, bisection otherwise.
const (
	solveNewtonIterations = 8
	solveMinSlope         = 1e-3
	solveTolerance        = 1e-7
	solveBisectIterations = 32
)

// At returns the eased progress at time fraction x, clamped to [0, 1]: the
// curve is solved for the parameter whose time coordinate sits at x across
// the time span, and the progress coordinate there is rescaled across the
// progress span. For a normalized curve this is the timing function itself,
// At(0) = 0 and At(1) = 1. The time axis must be monotonic, which holds for
// CSS-style quadruples and everything Slice, Reversed and Normalized derive
// from them.
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		x = 0
	} else if x >= 1 {
		x = 1
	}
	target := c.P0.X + x*(c.P3.X-c.P0.X)
	s := c.solveTime(target, x)
	sy := c.P3.Y - c.P0.Y
	if math.Abs(sy) < 1e-12 {
		return c.Value(s) - c.P0.Y
	}
	return (c.Value(s) - c.P0.Y) / sy
}

// solveTime finds the parameter whose time coordinate equals target. seed is
// the linear guess (the time fraction itself).
func (c CubicBezier) solveTime(target, seed float64) float64 {
	s := seed
	for i := 0; i < solveNewtonIterations; i++ {
		err := c.timeAt(s) - target
		if math.Abs(err) <= solveTolerance {
			return s
		}
		slope := c.timeSlope(s)
		if math.Abs(slope) < solveMinSlope {
			break
		}
		s -= err / slope
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}
	if math.Abs(c.timeAt(s)-target) <= solveTolerance {
		return s
	}

	// Newton stalled on a flat stretch; bisect. Time is monotonic in the
	// parameter, so the bracket [0, 1] always contains the answer.
	lo, hi := 0.0, 1.0
	for i := 0; i < solveBisectIterations; i++ {
		s = (lo + hi) / 2
		if c.timeAt(s) < target {
			lo = s
		} else {
			hi = s
		}
	}
	return s
}

// TweenFunc adapts the curve to the easing signature the gween library
// consumes, so tween-based playback can drive values along this curve.
func (c CubicBezier) TweenFunc() ease.TweenFunc {
	return func(t, begin, change, duration float32) float32 {
		if duration <= 0 {
			return begin + change
		}
		return begin + change*float32(c.At(float64(t/duration)))
	}
}
