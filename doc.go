// Package slur computes the geometry of slurs in engraved music.
//
// A slur that spans several staff lines is drawn as one [Segment] per line.
// For each segment, the package decides whether the curve goes above or below
// the notes, resolves its two anchors, fits a cubic Bézier that clears the
// material already rendered on the staff line, and records the finished curve
// so that material laid out afterwards avoids it.
//
// # Heightmaps
//
// Collision avoidance works on a [Heightmap] per staff line: for every
// horizontal sample column, the sky line holds the topmost and the bottom
// line the bottommost extent of everything rendered so far. Slurs read the
// side they are placed on and then tighten it with their own curve. Because
// of that, the order in which segments are calculated matters; [LayoutSlurs]
// processes a line's segments from left to right.
//
// # Curve fitting
//
// Fitting happens in a canonical frame in which the start anchor is the
// origin, the end anchor lies on the positive X axis and positive Y points
// away from the notes. In that frame, tangents from both anchors to the
// obstacle samples determine the angles of the two control arms, and the
// height of the tallest obstacle relative to the anchor distance determines
// their length. [EngravingRules] holds the constants governing both.
//
// # Coordinates
//
// All coordinates are in staff units relative to the staff line, with Y
// growing downward. Horizontal positions in the layout model ([Measure],
// [StaffEntry], [Note]) are relative to their parent.
//
// # Output
//
// The fitted curve is available as [Segment.Curve]. [Segment.Outline] turns
// it into a filled shape, which can be serialized with [BezPath.SVG] or
// inspected together with the heightmap using [RenderPNG].
package slur
