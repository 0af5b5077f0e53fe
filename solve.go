package slur

import "math"

// epsilon guards divisions by horizontal distances in the canonical frame.
const epsilon = 1e-9

// canonicalFrame maps staff-line coordinates into the frame in which a slur's
// control points are solved: the start anchor is the origin, the end anchor
// lies on the positive X axis and positive Y points away from the notes.
type canonicalFrame struct {
	toLocal Affine
	toPage  Affine
}

func newCanonicalFrame(start, end Point, p Placement) canonicalFrame {
	// Above the notes "away" is page up, so Y is flipped first.
	flip := p.sign()
	shift := Translate(Vec2(start).Negate()).ThenScale(1, flip)
	rot := RotationMatrix(-Vec2(end.Transform(shift)).Angle())
	return canonicalFrame{
		toLocal: rot.Affine().Mul(shift),
		toPage:  Scale(1, flip).Mul(rot.Transpose().Affine()).ThenTranslate(Vec2(start)),
	}
}

// FitInfo describes how a curve was fitted. All values are in the canonical
// frame; angles are in degrees.
type FitInfo struct {
	LeftSlope  float64
	RightSlope float64
	// Whether the tangent slopes were treated as parallel, in which case
	// the angles are the configured minimum.
	Parallel     bool
	Intersection Point
	LeftAngle    float64
	RightAngle   float64
	// Number of obstacle samples that carried data.
	Obstacles int
}

// FitCurve computes the cubic Bézier of a slur from start to end on side p
// that clears the obstacle samples. Samples carrying NoData are ignored.
//
// Tangents from both anchors to the obstacle silhouette determine the
// angles of the control arms, clamped to the configured range; the
// height of the tallest obstacle relative to the anchor distance determines
// their length.
func FitCurve(start, end Point, samples []Point, p Placement, rules EngravingRules) (CubicBez, FitInfo) {
	f := newCanonicalFrame(start, end, p)
	localEnd := end.Transform(f.toLocal)
	local := make([]Point, 0, len(samples))
	for _, pt := range samples {
		if isNoData(pt.Y) || pt.IsNaN() {
			continue
		}
		local = append(local, pt.Transform(f.toLocal))
	}

	info := FitInfo{
		LeftSlope:  leftTangentSlope(local, localEnd),
		RightSlope: rightTangentSlope(local, localEnd),
		Obstacles:  len(local),
	}
	info.Parallel = math.Abs(info.LeftSlope-info.RightSlope) < rules.SlurSlopeEpsilon
	info.Intersection = intersectTangents(info.LeftSlope, info.RightSlope, localEnd, info.Parallel)
	info.LeftAngle, info.RightAngle = tangentAngles(info.LeftSlope, info.RightSlope, info.Parallel, rules)

	c1, c2 := controlPoints(localEnd.X, info.LeftAngle, info.RightAngle, local, rules)
	return CubicBez{
		P0: start,
		P1: c1.Transform(f.toPage),
		P2: c2.Transform(f.toPage),
		P3: end,
	}, info
}

// directSlope returns the slope of the line from the origin to end.
func directSlope(end Point) float64 {
	if end.X <= epsilon {
		return 0
	}
	return end.Y / end.X
}

// leftTangentSlope returns the steepest slope from the origin to any of pts,
// but no less than the slope towards end.
func leftTangentSlope(pts []Point, end Point) float64 {
	slope := directSlope(end)
	for _, pt := range pts {
		if pt.X <= epsilon {
			continue
		}
		slope = max(slope, pt.Y/pt.X)
	}
	return slope
}

// rightTangentSlope returns the steepest descending slope from any of pts to
// end, but no more than the slope from the origin towards end.
func rightTangentSlope(pts []Point, end Point) float64 {
	slope := directSlope(end)
	for _, pt := range pts {
		dx := end.X - pt.X
		if dx <= epsilon {
			continue
		}
		slope = min(slope, (end.Y-pt.Y)/dx)
	}
	return slope
}

// intersectTangents returns the point where the left tangent through the
// origin meets the right tangent through end. Parallel tangents meet, by
// convention, halfway between the anchors at height 0.
func intersectTangents(left, right float64, end Point, parallel bool) Point {
	mid := Pt(end.X/2, 0)
	if parallel {
		return mid
	}
	pt, ok := LineThrough(Point{}, left).CrossingPoint(LineThrough(end, right))
	if !ok || pt.IsNaN() || pt.IsInf() {
		return mid
	}
	return pt
}

// tangentAngles converts the tangent slopes into the angles of the control
// arms. Each angle is biased away from the anchor line and clamped: the left
// one into [min, max], the right one into [−max, −min]. Parallel tangents
// use ±min directly.
func tangentAngles(left, right float64, parallel bool, rules EngravingRules) (float64, float64) {
	lo, hi := rules.SlurTangentMinAngle, rules.SlurTangentMaxAngle
	if parallel {
		return lo, -lo
	}
	bias := rules.SlurTangentAngleBias

	l := degrees(math.Atan(left))
	if left > 0 {
		l += bias
	} else {
		l -= bias
	}
	r := degrees(math.Atan(right))
	if right < 0 {
		r -= bias
	} else {
		r += bias
	}
	return min(max(lo, l), hi), max(min(-lo, r), -hi)
}

// heightWidthRatio returns the height of the tallest point of pts, but at
// least 0, divided by endX.
func heightWidthRatio(endX float64, pts []Point) float64 {
	if len(pts) == 0 || endX <= epsilon {
		return 0
	}
	height := 0.0
	for _, pt := range pts {
		height = max(height, pt.Y)
	}
	return height / endX
}

// controlPoints places the control points in the canonical frame: the left
// one at leftAngle from the origin, the right one at rightAngle measured
// backwards from (endX, 0). Both arms have the same length.
func controlPoints(endX, leftAngle, rightAngle float64, pts []Point, rules EngravingRules) (Point, Point) {
	length := endX * rules.lengthFactor(heightWidthRatio(endX, pts))
	l := VecFromAngle(radians(leftAngle)).Mul(length)
	r := VecFromAngle(radians(rightAngle)).Mul(length)
	return Point(l), Pt(endX-r.X, -r.Y)
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
