package slur

// EngravingRules holds the layout constants the slur calculation reads. A
// single value is supplied per layout pass and never modified.
//
// Angles are expressed in degrees, distances in staff units.
type EngravingRules struct {
	// Smallest angle between a tangent and the anchor line.
	SlurTangentMinAngle float64 `json:"slurTangentMinAngle"`
	// Largest angle between a tangent and the anchor line.
	SlurTangentMaxAngle float64 `json:"slurTangentMaxAngle"`
	// Vertical distance between an anchor and its notehead border.
	SlurNoteHeadYOffset float64 `json:"slurNoteHeadYOffset"`
	// Additional vertical distance for the longer of two slurs sharing a
	// start or end note.
	SlursStartingAtSameStaffEntryYOffset float64 `json:"slursStartingAtSameStaffEntryYOffset"`

	// Added to the raw tangent angle, away from the anchor line, before
	// clamping.
	SlurTangentAngleBias float64 `json:"slurTangentAngleBias"`
	// The control arm length is endX * (k*ratio + d), ratio being the height
	// of the tallest obstacle over the anchor distance. k is
	// SlurHeightFlattenFactor, d is SlurHeightFlattenOffset.
	SlurHeightFlattenFactor float64 `json:"slurHeightFlattenFactor"`
	SlurHeightFlattenOffset float64 `json:"slurHeightFlattenOffset"`
	// Tangent slopes differing by less than this are treated as parallel.
	SlurSlopeEpsilon float64 `json:"slurSlopeEpsilon"`
}

// DefaultEngravingRules returns the rules used by default.
//
// The bias, slope epsilon and length factor are empirical and have not been
// calibrated against engraved scores.
func DefaultEngravingRules() EngravingRules {
	return EngravingRules{
		SlurTangentMinAngle:                  30,
		SlurTangentMaxAngle:                  80,
		SlurNoteHeadYOffset:                  0.5,
		SlursStartingAtSameStaffEntryYOffset: 0.8,
		SlurTangentAngleBias:                 20,
		SlurHeightFlattenFactor:              0.9,
		SlurHeightFlattenOffset:              0.2,
		SlurSlopeEpsilon:                     1e-4,
	}
}

// lengthFactor maps a height/width ratio to the control arm length, as a
// fraction of the anchor distance.
func (r EngravingRules) lengthFactor(ratio float64) float64 {
	return r.SlurHeightFlattenFactor*ratio + r.SlurHeightFlattenOffset
}
