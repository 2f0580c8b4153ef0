package physics

import (
	"image/color"
	"math"
)

// --- Wektor 2D ---
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Len2 is the squared length, cheaper than Len when only a distance
// comparison is needed.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{0, 0}
	}
	return Vec2{v.X / l, v.Y / l}
}

// RadiusScale maps cube-root-of-mass to a display radius in world units.
const RadiusScale = 1.0 / 200.0

// --- Ciało fizyczne ---
// Mass and Radius are fixed at creation; only Pos and Vel change afterwards.
// ColorC is used by the renderer only.
type Body struct {
	Mass   float64
	Pos    Vec2
	Vel    Vec2
	Radius float64
	ColorC color.RGBA
}

// NewBody creates a body at rest with a radius derived from its mass.
// Mass must be positive.
func NewBody(mass float64, pos Vec2) Body {
	return Body{
		Mass:   mass,
		Pos:    pos,
		Radius: math.Cbrt(mass) * RadiusScale,
	}
}
