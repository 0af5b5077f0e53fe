package slur

// Rect is an axis-aligned rectangle. Staff entries and voice entries use it for
// their borders relative to their own position: X0 is the left border, X1 the
// right border, Y0 the top border and Y1 the bottom border.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Path returns the outline of r, clockwise on the page.
func (r Rect) Path() BezPath {
	var p BezPath
	p.MoveTo(Pt(r.X0, r.Y0))
	p.LineTo(Pt(r.X1, r.Y0))
	p.LineTo(Pt(r.X1, r.Y1))
	p.LineTo(Pt(r.X0, r.Y1))
	p.ClosePath()
	return p
}
