package slur

import "testing"

// noteBox is the border of a single notehead around its position.
var noteBox = Rect{-0.5, -0.5, 0.5, 0.5}

type testScene struct {
	line    *StaffLine
	measure *Measure
	entries []*StaffEntry
	notes   []*Note
}

// newTestScene lays out a staff line of width 50 with one measure and one
// note at each of xs, at timestamps 0, 1, 2, and so on.
func newTestScene(xs ...float64) *testScene {
	sc := &testScene{line: NewStaffLine(50, 1)}
	sc.measure = sc.line.AddMeasure(0, 50)
	for i, x := range xs {
		e := sc.measure.AddEntry(x, noteBox)
		n := e.AddVoice(0, noteBox).AddNote(0, float64(i))
		sc.entries = append(sc.entries, e)
		sc.notes = append(sc.notes, n)
	}
	return sc
}

// segment returns the segment of a new slur from note i to note j.
func (sc *testScene) segment(i, j int) *Segment {
	s := NewSlur(sc.notes[i], sc.notes[j])
	return NewSegment(s, sc.line, sc.entries[i:j+1])
}

func TestAbsoluteX(t *testing.T) {
	line := NewStaffLine(100, 1)
	line.AddMeasure(0, 40)
	m := line.AddMeasure(40, 60)
	e := m.AddEntry(10, noteBox)
	n := e.AddVoice(0, noteBox).AddNote(0.25, 0)
	g := e.AddGrace(-3, noteBox)
	gn := g.AddVoice(0, noteBox).AddNote(0.5, 0)

	if x := e.AbsoluteX(); x != 50 {
		t.Errorf("got entry x %g, want 50", x)
	}
	if x := n.AbsoluteX(); x != 50.25 {
		t.Errorf("got note x %g, want 50.25", x)
	}
	if x := g.AbsoluteX(); x != 47 {
		t.Errorf("got grace entry x %g, want 47", x)
	}
	if x := gn.AbsoluteX(); x != 47.5 {
		t.Errorf("got grace note x %g, want 47.5", x)
	}
	if n.Grace || !gn.Grace {
		t.Errorf("got grace flags %t and %t, want false and true", n.Grace, gn.Grace)
	}
}

func TestFindNote(t *testing.T) {
	sc := newTestScene(5, 45)
	e := sc.entries[0]
	g := e.AddGrace(-2, noteBox)
	gn := g.AddVoice(0, noteBox).AddNote(0, 0)

	if n, ok := e.findNote(sc.notes[0], false); !ok || n != sc.notes[0] {
		t.Error("note of the entry not found")
	}
	if _, ok := e.findNote(sc.notes[1], true); ok {
		t.Error("found note of another entry")
	}
	if _, ok := e.findNote(gn, false); ok {
		t.Error("found grace note without looking for one")
	}
	if n, ok := e.findNote(gn, true); !ok || n != gn {
		t.Error("grace note not found")
	}
	if _, ok := e.findNote(nil, true); ok {
		t.Error("found nil note")
	}
}

func TestSlurStacking(t *testing.T) {
	sc := newTestScene(5, 25, 45)
	long := NewSlur(sc.notes[0], sc.notes[2])
	short := NewSlur(sc.notes[0], sc.notes[1])
	single := NewSlur(sc.notes[1], sc.notes[2])

	if !long.StartNoteHasMoreStartingSlurs() || !short.StartNoteHasMoreStartingSlurs() {
		t.Error("both slurs start at the same note")
	}
	if single.StartNoteHasMoreStartingSlurs() {
		t.Error("no other slur starts where the single slur starts")
	}
	if !long.EndNoteHasMoreEndingSlurs() || !single.EndNoteHasMoreEndingSlurs() {
		t.Error("both slurs end at the same note")
	}
	if short.EndNoteHasMoreEndingSlurs() {
		t.Error("no other slur ends where the short slur ends")
	}
	if !long.IsLonger() {
		t.Error("long slur should be longer")
	}
	if short.IsLonger() || single.IsLonger() {
		t.Error("short slurs shouldn't be longer")
	}

	open := &Slur{Start: sc.notes[0]}
	if open.IsLonger() || open.EndNoteHasMoreEndingSlurs() {
		t.Error("slur without end note can't be longer")
	}
}

func TestFindTiedNote(t *testing.T) {
	prev := newTestScene(40)
	sc := newTestScene(10, 30)
	NewTie(prev.notes[0], sc.notes[0])

	if n, ok := sc.entries[0].findTiedNote(prev.notes[0]); !ok || n != sc.notes[0] {
		t.Error("continuation of the tie not found")
	}
	if _, ok := sc.entries[1].findTiedNote(prev.notes[0]); ok {
		t.Error("found a tied note in an entry without one")
	}
	if _, ok := sc.entries[0].findTiedNote(sc.notes[1]); ok {
		t.Error("found a tied note for an untied note")
	}
	if _, ok := sc.entries[0].findTiedNote(sc.notes[0]); ok {
		t.Error("a note isn't tied to itself")
	}
}
