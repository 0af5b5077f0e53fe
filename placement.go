package slur

import "math"

// Placement is the side of the notes a slur is drawn on.
type Placement uint8

const (
	Below Placement = iota
	Above
)

func (p Placement) String() string {
	switch p {
	case Below:
		return "Below"
	case Above:
		return "Above"
	default:
		return "InvalidPlacement"
	}
}

// sign returns the page direction pointing away from the notes: −1 above
// them, since page Y grows downward, and +1 below.
func (p Placement) sign() float64 {
	if p == Above {
		return -1
	}
	return 1
}

// empty returns the sentinel of an empty heightmap cell on side p.
func (p Placement) empty() float64 {
	if p == Above {
		return NoData
	}
	return -NoData
}

// furthest returns whichever of a and b lies further from the staff on side p.
func (p Placement) furthest(a, b float64) float64 {
	if p == Above {
		return min(a, b)
	}
	return max(a, b)
}

// DecidePlacement picks the side for a slur spanning x0 to x1 whose notes
// reach from notesTop to notesBottom, by comparing how far already rendered
// material extends beyond the notes above and below. The slur goes above
// when the material below extends further, and below otherwise, including
// ties.
func DecidePlacement(h *Heightmap, x0, x1, notesTop, notesBottom float64) Placement {
	var above, below float64
	if sky := h.SkyMinInRange(x0, x1); !isNoData(sky) {
		above = notesTop - sky
	}
	if bottom := h.BottomMaxInRange(x0, x1); !isNoData(bottom) {
		below = bottom - notesBottom
	}
	if math.Abs(below) > math.Abs(above) {
		return Above
	}
	return Below
}

// calculatePlacement decides the side of the segment. Lyrics force the slur
// above. In measures with several voices the slur follows its start note's
// voice: below for a linked voice, above otherwise. All other slurs are
// placed by [DecidePlacement].
func (s *Segment) calculatePlacement() Placement {
	for _, e := range s.Entries {
		if e.HasLyrics {
			return Above
		}
	}
	for _, e := range s.Entries {
		if e.Measure != nil && e.Measure.MultipleVoices {
			if start := s.Slur.Start; start != nil && start.Voice != nil && start.Voice.Linked {
				return Below
			}
			return Above
		}
	}

	first, last := s.Entries[0], s.Entries[len(s.Entries)-1]
	x0 := first.AbsoluteX() + first.Box.X0
	x1 := last.AbsoluteX() + last.Box.X1
	top := min(first.Box.Y0, last.Box.Y0)
	bottom := max(first.Box.Y1, last.Box.Y1)
	return DecidePlacement(s.Line.Heightmap, x0, x1, top, bottom)
}
