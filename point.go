package slur

import (
	"fmt"
	"math"
)

// Point is a position in staff-line coordinates, or in the canonical frame of
// a slur while its control points are being solved. Y grows downward on the
// page.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Pt(pt.X+v.X, pt.Y+v.Y)
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Pt(
		aff.N0*pt.X+aff.N2*pt.Y+aff.N4,
		aff.N1*pt.X+aff.N3*pt.Y+aff.N5,
	)
}

// Sub returns the displacement from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec(pt.X-o.X, pt.Y-o.Y)
}

func (pt Point) Midpoint(o Point) Point {
	return Pt((pt.X+o.X)/2, (pt.Y+o.Y)/2)
}

func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Vec2 is a displacement between two points.
type Vec2 struct {
	X float64
	Y float64
}

func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromAngle returns the unit vector at angle th, in radians, measured from
// the positive X axis towards positive Y.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec(cos, sin)
}

// Angle returns atan2(v.Y, v.X).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Cross returns the Z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec(v.X*f, v.Y*f)
}

func (v Vec2) Negate() Vec2 {
	return Vec(-v.X, -v.Y)
}
