package osier

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Toolkits premultiply at render submission time if they need to.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the zero color. Views without an explicit background
// start here.
var ColorTransparent = Color{0, 0, 0, 0}

// Lerp returns the component-wise interpolation between c and other at t.
// t is not clamped.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Vec2 is a 2D point or offset. Curve control points use X for time and Y for
// progress.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the linear interpolation between v and other at t.
// t is not clamped.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// Direction is the play direction of a transition. A transition starts
// DirectionUnknown and commits to DirectionIn or DirectionOut on its first
// tick; reversals flip it mid-flight.
type Direction uint8

const (
	DirectionUnknown Direction = iota // no tick observed yet
	DirectionIn                       // entering: progress runs toward the resting state
	DirectionOut                      // leaving: progress runs toward the fully-transitioned state
)

// String implements fmt.Stringer for trace output.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "unknown"
	}
}
