package slur

import "math"

// NoData marks a heightmap cell into which nothing has been rendered yet.
// Empty sky cells hold +NoData and empty bottom cells hold −NoData, so that
// the first real write always wins the min/max.
const NoData = math.MaxFloat64

// isNoData reports whether y is a sentinel rather than a rendered extent.
func isNoData(y float64) bool {
	return math.Abs(y) == NoData || math.IsInf(y, 0) || math.IsNaN(y)
}

// Heightmap holds the sky line and bottom line of one staff line. Sky[i] is
// the topmost (smallest Y) extent of everything rendered in the i-th sample
// column, Bottom[i] the bottommost (largest Y) extent. Column i covers
// X ∈ [i/SamplingUnit, (i+1)/SamplingUnit).
//
// Cells only ever move away from the staff: sky cells decrease and bottom
// cells increase. A Heightmap is not safe for concurrent use; a layout pass
// owns it exclusively.
type Heightmap struct {
	Sky    []float64
	Bottom []float64
	// Number of sample columns per staff unit.
	SamplingUnit float64
}

// NewHeightmap returns an empty heightmap covering width staff units.
func NewHeightmap(width, samplingUnit float64) *Heightmap {
	n := max(int(math.Ceil(width*samplingUnit)), 0)
	h := &Heightmap{
		Sky:          make([]float64, n),
		Bottom:       make([]float64, n),
		SamplingUnit: samplingUnit,
	}
	for i := range n {
		h.Sky[i] = NoData
		h.Bottom[i] = -NoData
	}
	return h
}

// line returns the array holding the extents on side p.
func (h *Heightmap) line(p Placement) []float64 {
	if p == Above {
		return h.Sky
	}
	return h.Bottom
}

// LeftIndexForX returns the column containing x, clamped to [0, length).
func (h *Heightmap) LeftIndexForX(x float64, length int) int {
	return clampIndex(math.Floor(x*h.SamplingUnit), length)
}

// RightIndexForX returns the first column boundary at or after x, clamped to
// [0, length).
func (h *Heightmap) RightIndexForX(x float64, length int) int {
	return clampIndex(math.Ceil(x*h.SamplingUnit), length)
}

func clampIndex(idx float64, length int) int {
	switch {
	case length <= 0 || idx < 0 || math.IsNaN(idx):
		return 0
	case idx >= float64(length):
		return length - 1
	default:
		return int(idx)
	}
}

// SkyMinInRange returns the topmost sky extent between x0 and x1. It returns
// NoData if nothing has been rendered there.
func (h *Heightmap) SkyMinInRange(x0, x1 float64) float64 {
	return h.extremeInRange(Above, x0, x1)
}

// BottomMaxInRange returns the bottommost bottom extent between x0 and x1. It
// returns −NoData if nothing has been rendered there.
func (h *Heightmap) BottomMaxInRange(x0, x1 float64) float64 {
	return h.extremeInRange(Below, x0, x1)
}

func (h *Heightmap) extremeInRange(p Placement, x0, x1 float64) float64 {
	line := h.line(p)
	res := p.empty()
	start, end := h.columns(x0, x1, len(line))
	for i := start; i < end; i++ {
		if isNoData(line[i]) {
			continue
		}
		res = p.furthest(res, line[i])
	}
	return res
}

// columns returns the half-open column range touched by [x0, x1].
func (h *Heightmap) columns(x0, x1 float64, length int) (int, int) {
	start := math.Floor(x0 * h.SamplingUnit)
	end := math.Ceil(x1 * h.SamplingUnit)
	if math.IsNaN(start) || math.IsNaN(end) {
		return 0, 0
	}
	s := int(max(start, 0))
	e := int(min(end, float64(length)))
	return s, max(s, e)
}

// TightenSky records material reaching up to y between x0 and x1.
func (h *Heightmap) TightenSky(x0, x1, y float64) {
	h.tightenRange(Above, x0, x1, y)
}

// TightenBottom records material reaching down to y between x0 and x1.
func (h *Heightmap) TightenBottom(x0, x1, y float64) {
	h.tightenRange(Below, x0, x1, y)
}

func (h *Heightmap) tightenRange(p Placement, x0, x1, y float64) {
	line := h.line(p)
	start, end := h.columns(x0, x1, len(line))
	for i := start; i < end; i++ {
		tighten(line, i, y, p)
	}
}

// tighten folds y into line[i], never moving the cell back toward the staff.
func tighten(line []float64, i int, y float64, p Placement) {
	if math.IsNaN(y) {
		return
	}
	line[i] = p.furthest(line[i], y)
}

// Samples extracts the obstacle points on side p between from and to. The
// points sit at the centers of the columns strictly inside the range and may
// carry NoData values. If no column lies inside the range, Samples returns
// the midpoint of from and to instead, so the result is never empty.
func (h *Heightmap) Samples(p Placement, from, to Point) []Point {
	line := h.line(p)
	var pts []Point
	if n := len(line); n > 0 {
		start := h.RightIndexForX(from.X, n)
		end := h.LeftIndexForX(to.X, n)
		for i := start; i < end; i++ {
			pts = append(pts, Pt((0.5+float64(i))/h.SamplingUnit, line[i]))
		}
	}
	if len(pts) == 0 {
		pts = append(pts, from.Midpoint(to))
	}
	return pts
}

// Reserve folds the vertical extent of c into the line on side p, so that
// slurs laid out later on the same staff line avoid it. For every column
// between the curve's end points the curve is evaluated at the matching
// fraction of its horizontal span, and the result is written into the column
// the curve point falls into as well as the one after it.
func (h *Heightmap) Reserve(c CubicBez, p Placement) {
	line := h.line(p)
	n := len(line)
	distance := c.P3.X - c.P0.X
	if n == 0 || distance <= epsilon || c.IsNaN() || c.IsInf() {
		return
	}
	start := h.LeftIndexForX(c.P0.X, n)
	end := h.LeftIndexForX(c.P3.X, n)
	for i := start; i < end; i++ {
		diff := float64(i)/h.SamplingUnit - c.P0.X
		pt := c.Eval(math.Abs(diff) / distance)

		idx := h.LeftIndexForX(pt.X, n)
		if idx >= start {
			tighten(line, idx, pt.Y, p)
		}
		if idx+1 < n {
			tighten(line, idx+1, pt.Y, p)
		}
	}
}
