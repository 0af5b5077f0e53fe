package slur

// The types in this file are the parts of the surrounding layout model that a
// slur calculation reads. Horizontal positions are relative to the parent
// object: notes to their staff entry, staff entries to their measure (or, for
// grace entries, to the staff entry carrying them) and measures to the staff
// line. Vertical positions are relative to the staff line.

// StaffLine is one line of a system, holding its measures and the heightmap
// shared by everything laid out on it.
type StaffLine struct {
	Width     float64
	Measures  []*Measure
	Heightmap *Heightmap
}

// NewStaffLine returns an empty staff line of the given width whose heightmap
// has samplingUnit columns per staff unit.
func NewStaffLine(width, samplingUnit float64) *StaffLine {
	return &StaffLine{
		Width:     width,
		Heightmap: NewHeightmap(width, samplingUnit),
	}
}

// AddMeasure appends a measure starting at x.
func (l *StaffLine) AddMeasure(x, width float64) *Measure {
	m := &Measure{Line: l, X: x, Width: width}
	l.Measures = append(l.Measures, m)
	return m
}

// firstContentX returns the X position just past the instruction block
// (clef, key and time signature) at the start of the line.
func (l *StaffLine) firstContentX() float64 {
	if len(l.Measures) == 0 {
		return 0
	}
	m := l.Measures[0]
	return m.X + m.BeginInstructionsWidth
}

// Measure is one measure of a staff line.
type Measure struct {
	Line  *StaffLine
	X     float64
	Width float64
	// Width of the clef, key and time signature block at the start of the
	// measure.
	BeginInstructionsWidth float64
	// Whether more than one voice is notated in the measure.
	MultipleVoices bool
	Entries        []*StaffEntry
}

// AddEntry appends a staff entry at x with the given borders.
func (m *Measure) AddEntry(x float64, box Rect) *StaffEntry {
	e := &StaffEntry{Measure: m, X: x, Box: box}
	m.Entries = append(m.Entries, e)
	return e
}

// StaffEntry groups everything notated at one timestamp of a measure.
type StaffEntry struct {
	Measure *Measure
	X       float64
	// Borders relative to X.
	Box    Rect
	Voices []*VoiceEntry
	// Grace entries preceding this entry.
	Graces []*StaffEntry
	// The entry a grace entry is attached to; nil for regular entries.
	Carrier   *StaffEntry
	HasLyrics bool
}

// AddVoice appends a voice entry at vertical position y.
func (e *StaffEntry) AddVoice(y float64, box Rect) *VoiceEntry {
	v := &VoiceEntry{Entry: e, Y: y, Box: box}
	e.Voices = append(e.Voices, v)
	return v
}

// AddGrace attaches a grace entry to e, at x relative to e.
func (e *StaffEntry) AddGrace(x float64, box Rect) *StaffEntry {
	g := &StaffEntry{Measure: e.Measure, X: x, Box: box, Carrier: e}
	e.Graces = append(e.Graces, g)
	return g
}

// AbsoluteX returns the entry's position relative to its staff line.
func (e *StaffEntry) AbsoluteX() float64 {
	x := e.X
	if e.Carrier != nil {
		x += e.Carrier.X
	}
	if e.Measure != nil {
		x += e.Measure.X
	}
	return x
}

// findNote looks for n among the notes of e and, if grace is set, among the
// notes of e's grace entries.
func (e *StaffEntry) findNote(n *Note, grace bool) (*Note, bool) {
	if n == nil {
		return nil, false
	}
	for _, v := range e.Voices {
		for _, o := range v.Notes {
			if o == n {
				return o, true
			}
		}
	}
	if grace {
		for _, g := range e.Graces {
			if o, ok := g.findNote(n, false); ok {
				return o, true
			}
		}
	}
	return nil, false
}

// findTiedNote looks for a note of e tied to n. A slur starting at a tied
// note whose tie continues on the next staff line starts there at the
// continuation.
func (e *StaffEntry) findTiedNote(n *Note) (*Note, bool) {
	if n == nil || n.Tie == nil {
		return nil, false
	}
	for _, v := range e.Voices {
		for _, o := range v.Notes {
			if o != n && o.Tie == n.Tie {
				return o, true
			}
		}
	}
	return nil, false
}

// VoiceEntry groups the notes of one voice within a staff entry.
type VoiceEntry struct {
	Entry *StaffEntry
	Y     float64
	// Borders of the note group relative to Y.
	Box Rect
	// Whether the voice is a secondary voice linked to the measure's main
	// voice.
	Linked bool
	Notes  []*Note
}

// AddNote appends a note at x, relative to the staff entry, sounding at the
// given timestamp.
func (v *VoiceEntry) AddNote(x, timestamp float64) *Note {
	n := &Note{
		Voice:     v,
		X:         x,
		Timestamp: timestamp,
		Grace:     v.Entry != nil && v.Entry.Carrier != nil,
	}
	v.Notes = append(v.Notes, n)
	return n
}

// border returns the Y of the note group's border facing p.
func (v *VoiceEntry) border(p Placement) float64 {
	if p == Above {
		return v.Y + v.Box.Y0
	}
	return v.Y + v.Box.Y1
}

// Note is a single note of a voice entry, positioned relative to its staff
// entry.
type Note struct {
	Voice *VoiceEntry
	X     float64
	// Absolute timestamp, in whole notes.
	Timestamp float64
	Grace     bool
	// Slurs starting or ending at this note.
	Slurs []*Slur
	// The tie the note belongs to, if any.
	Tie *Tie
}

// AbsoluteX returns the note's position relative to its staff line.
func (n *Note) AbsoluteX() float64 {
	return n.X + n.Voice.Entry.AbsoluteX()
}

// entry returns the staff entry the note is notated in.
func (n *Note) entry() *StaffEntry {
	return n.Voice.Entry
}

// Tie connects notes of the same pitch, possibly across a line break.
type Tie struct {
	Notes []*Note
}

// NewTie returns a tie over notes and registers it with each of them.
func NewTie(notes ...*Note) *Tie {
	t := &Tie{Notes: notes}
	for _, n := range notes {
		n.Tie = t
	}
	return t
}

// Slur is a slur between two notes. It may span several staff lines, in
// which case one [Segment] is laid out per line.
type Slur struct {
	Start *Note
	End   *Note
}

// NewSlur returns a slur from start to end and registers it with both notes.
func NewSlur(start, end *Note) *Slur {
	s := &Slur{Start: start, End: end}
	if start != nil {
		start.Slurs = append(start.Slurs, s)
	}
	if end != nil && end != start {
		end.Slurs = append(end.Slurs, s)
	}
	return s
}

// StartNoteHasMoreStartingSlurs reports whether another slur starts at the
// start note of s.
func (s *Slur) StartNoteHasMoreStartingSlurs() bool {
	if s.Start == nil {
		return false
	}
	n := 0
	for _, o := range s.Start.Slurs {
		if o.Start == s.Start {
			n++
		}
	}
	return n > 1
}

// EndNoteHasMoreEndingSlurs reports whether another slur ends at the end note
// of s.
func (s *Slur) EndNoteHasMoreEndingSlurs() bool {
	if s.End == nil {
		return false
	}
	n := 0
	for _, o := range s.End.Slurs {
		if o.End == s.End {
			n++
		}
	}
	return n > 1
}

// IsLonger reports whether s spans more time than some other slur starting
// or ending at one of its notes.
func (s *Slur) IsLonger() bool {
	length, ok := s.duration()
	if !ok {
		return false
	}
	for _, n := range [2]*Note{s.Start, s.End} {
		for _, o := range n.Slurs {
			if o == s {
				continue
			}
			if l, ok := o.duration(); ok && l < length {
				return true
			}
		}
	}
	return false
}

func (s *Slur) duration() (float64, bool) {
	if s.Start == nil || s.End == nil {
		return 0, false
	}
	return s.End.Timestamp - s.Start.Timestamp, true
}
