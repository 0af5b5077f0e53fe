package slur

import (
	"cmp"
	"slices"
)

// Segment is the part of a slur drawn on one staff line. Its curve is
// computed once by [Segment.Calculate] and not changed afterwards.
type Segment struct {
	Slur *Slur
	Line *StaffLine
	// The staff entries spanned on this line, in order.
	Entries []*StaffEntry
	// Whether the slur starts or ends at a grace note.
	GraceStart bool
	GraceEnd   bool

	Placement Placement
	Curve     CubicBez
	Fit       FitInfo
}

// NewSegment returns the segment of s on line spanning entries.
func NewSegment(s *Slur, line *StaffLine, entries []*StaffEntry) *Segment {
	return &Segment{
		Slur:       s,
		Line:       line,
		Entries:    entries,
		GraceStart: s.Start != nil && s.Start.Grace,
		GraceEnd:   s.End != nil && s.End.Grace,
	}
}

// Calculate decides the placement of the segment, fits its curve around the
// material already recorded in the staff line's heightmap, and then records
// the curve in the heightmap.
//
// Calculate panics if the segment has no staff entries or its staff line has
// no heightmap.
func (s *Segment) Calculate(rules EngravingRules) {
	if len(s.Entries) == 0 {
		panic("slur: segment without staff entries")
	}
	if s.Line == nil || s.Line.Heightmap == nil {
		panic("slur: segment without heightmap")
	}
	h := s.Line.Heightmap

	// A note not found on this line is on the previous or next one.
	start, ok := s.Entries[0].findNote(s.Slur.Start, s.GraceStart)
	if !ok {
		start, _ = s.Entries[0].findTiedNote(s.Slur.Start)
	}
	end, _ := s.Entries[len(s.Entries)-1].findNote(s.Slur.End, s.GraceEnd)

	s.Placement = s.calculatePlacement()
	a := s.resolveAnchors(start, end, rules)
	samples := h.Samples(s.Placement, a.SpanStart, a.SpanEnd)
	s.Curve, s.Fit = FitCurve(a.Start, a.End, samples, s.Placement, rules)
	h.Reserve(s.Curve, s.Placement)
}

// startX is the position segments of a staff line are ordered by.
func (s *Segment) startX() float64 {
	if len(s.Entries) == 0 {
		return 0
	}
	return s.Entries[0].AbsoluteX()
}

// LayoutSlurs calculates segments from left to right. Segments starting at
// the same position keep their relative order. Since every segment records
// its curve in the shared heightmap, later segments avoid earlier ones.
func LayoutSlurs(segments []*Segment, rules EngravingRules) {
	ordered := slices.Clone(segments)
	slices.SortStableFunc(ordered, func(a, b *Segment) int {
		return cmp.Compare(a.startX(), b.startX())
	})
	for _, s := range ordered {
		s.Calculate(rules)
	}
}

// Outline returns the filled shape of the slur: the fitted curve, and a
// second curve back to the start whose control points lie thickness further
// away from the notes. The two curves meet at the anchors.
func (s *Segment) Outline(thickness float64) BezPath {
	c := s.Curve
	off := Vec(0, s.Placement.sign()*thickness)
	p := c.Path()
	p.CubicTo(c.P2.Translate(off), c.P1.Translate(off), c.P0)
	p.ClosePath()
	return p
}
