package slur

// Line is the infinite line through P0 and P1.
type Line struct {
	P0 Point
	P1 Point
}

// LineThrough returns the line through pt with the given slope.
func LineThrough(pt Point, slope float64) Line {
	return Line{P0: pt, P1: pt.Translate(Vec(1, slope))}
}

// CrossingPoint returns the point where l and o cross. It reports false if
// they are parallel.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	d0 := l.P1.Sub(l.P0)
	d1 := o.P1.Sub(o.P0)
	den := d0.Cross(d1)
	if den == 0 {
		return Point{}, false
	}
	t := d0.Cross(l.P0.Sub(o.P0)) / den
	return o.P0.Translate(d1.Mul(t)), true
}
