package geom

import (
	"math"

	"golang.org/x/exp/rand"
)

// Vec2 is a point or displacement in world units (pixels)
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the vector magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle converts an angle in radians to a vector of the given magnitude.
// Angles follow screen coordinates: 0 points right, positive turns downward.
func FromAngle(theta, magnitude float64) Vec2 {
	return Vec2{
		X: math.Cos(theta) * magnitude,
		Y: math.Sin(theta) * magnitude,
	}
}

// RandomAngle samples uniformly over [0, 2π)
func RandomAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// RandomDirection returns a vector of the given magnitude pointing in a
// uniformly random direction
func RandomDirection(rng *rand.Rand, magnitude float64) Vec2 {
	return FromAngle(RandomAngle(rng), magnitude)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// WithCenterY returns the rectangle moved vertically so its center sits at y
func (r Rect) WithCenterY(y float64) Rect {
	r.Y = y - r.H/2
	return r
}

// Inset shrinks the rectangle by d on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains reports whether the point lies inside the rectangle (edges included)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Clamp restricts a value to be within [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
