package slur

// Anchors are the end points of a slur segment together with the horizontal
// range in which obstacles are sampled.
type Anchors struct {
	Start Point
	End   Point
	// Obstacles are sampled between SpanStart and SpanEnd. The span excludes
	// the bound notes' own staff entries, so their stems are not obstacles.
	// Both points sit at the height of the respective anchor.
	SpanStart Point
	SpanEnd   Point
}

// resolveAnchors computes the anchors of the segment on side s.Placement.
// start and end are the bound notes on this staff line; nil means the slur
// continues from the previous line or onto the next one.
func (s *Segment) resolveAnchors(start, end *Note, rules EngravingRules) Anchors {
	var a Anchors
	line := s.Line
	last := s.Entries[len(s.Entries)-1]

	if start != nil {
		e := start.entry()
		a.Start = Pt(start.AbsoluteX(), start.Voice.border(s.Placement))
		a.SpanStart.X = e.AbsoluteX() + e.Box.X1
	} else {
		a.Start.X = line.firstContentX()
		a.SpanStart.X = a.Start.X
	}

	if end != nil {
		e := end.entry()
		a.End = Pt(end.AbsoluteX(), end.Voice.border(s.Placement))
		a.SpanEnd.X = e.AbsoluteX() + e.Box.X0
	} else {
		a.End.X = line.Width
		a.SpanEnd.X = a.End.X
		if m := last.Measure; m != nil {
			a.SpanEnd.X = m.X + m.Width
		}
	}

	// At a line break the missing anchor takes the height of the present
	// one. Offsets are added afterwards, so a stacked present end moves
	// alone and the segment is then no longer level.
	switch {
	case start == nil && end == nil:
		a.Start.Y, a.End.Y = 0, 0
	case start == nil:
		a.Start.Y = a.End.Y
	case end == nil:
		a.End.Y = a.Start.Y
	}

	away := s.Placement.sign()
	a.Start.Y += away * rules.SlurNoteHeadYOffset
	a.End.Y += away * rules.SlurNoteHeadYOffset

	// The longer of two slurs sharing a note is moved outward so their
	// anchors do not coincide.
	longer := s.Slur.IsLonger()
	if start != nil && longer && s.Slur.StartNoteHasMoreStartingSlurs() {
		a.Start.Y += away * rules.SlursStartingAtSameStaffEntryYOffset
	}
	if end != nil && longer && s.Slur.EndNoteHasMoreEndingSlurs() {
		a.End.Y += away * rules.SlursStartingAtSameStaffEntryYOffset
	}

	a.SpanStart.Y = a.Start.Y
	a.SpanEnd.Y = a.End.Y
	return a
}
