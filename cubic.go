package slur

// CubicBez is a cubic Bézier curve. For a slur segment, P0 and P3 are the
// anchors and P1 and P2 the control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval returns the point at parameter t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	b0 := mt * mt * mt
	b1 := 3 * mt * mt * t
	b2 := 3 * mt * t * t
	b3 := t * t * t
	return Pt(
		b0*c.P0.X+b1*c.P1.X+b2*c.P2.X+b3*c.P3.X,
		b0*c.P0.Y+b1*c.P1.Y+b2*c.P2.Y+b3*c.P3.Y,
	)
}

// Path returns the curve as a single open subpath.
func (c CubicBez) Path() BezPath {
	var p BezPath
	p.MoveTo(c.P0)
	p.CubicTo(c.P1, c.P2, c.P3)
	return p
}
