package slur

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Start a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// Straight line to P0.
	LineToKind
	// Cubic Bézier with control points P0 and P1, ending at P2.
	CubicToKind
	// Line back to the start of the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath]. Only the points its
// kind uses are set.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

// Transform applies aff to the points of el.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind, LineToKind:
		el.P0 = el.P0.Transform(aff)
	case CubicToKind:
		el.P0 = el.P0.Transform(aff)
		el.P1 = el.P1.Transform(aff)
		el.P2 = el.P2.Transform(aff)
	}
	return el
}

// BezPath is a sequence of path elements. Slur outlines and heightmap
// silhouettes are handed to renderers in this form.
type BezPath []PathElement

// Transform returns a copy of p with aff applied to every element.
func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

func (p *BezPath) MoveTo(pt Point) {
	*p = append(*p, PathElement{Kind: MoveToKind, P0: pt})
}

func (p *BezPath) LineTo(pt Point) {
	*p = append(*p, PathElement{Kind: LineToKind, P0: pt})
}

func (p *BezPath) CubicTo(p1, p2, p3 Point) {
	*p = append(*p, PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3})
}

func (p *BezPath) ClosePath() {
	*p = append(*p, PathElement{Kind: ClosePathKind})
}

// SVGOptions configures [BezPath.SVG] and [BezPath.WriteSVG].
type SVGOptions struct {
	// Maximum number of decimals per coordinate. Zero uses as many as needed
	// to represent each coordinate exactly.
	MaxPrecision int
}

// SVG returns p as SVG path data.
func (p BezPath) SVG(opts SVGOptions) string {
	var sb strings.Builder
	// Writing to a strings.Builder doesn't fail.
	p.WriteSVG(&sb, opts)
	return sb.String()
}

// WriteSVG writes p as SVG path data to w, with absolute commands separated
// by single spaces.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	num := func(f float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		s := strconv.FormatFloat(f, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		return s
	}
	pt := func(p Point) string {
		return num(p.X) + "," + num(p.Y)
	}

	for i, el := range p {
		var cmd string
		switch el.Kind {
		case MoveToKind:
			cmd = "M" + pt(el.P0)
		case LineToKind:
			cmd = "L" + pt(el.P0)
		case CubicToKind:
			cmd = "C" + pt(el.P0) + " " + pt(el.P1) + " " + pt(el.P2)
		case ClosePathKind:
			cmd = "Z"
		default:
			panic(fmt.Sprintf("slur: invalid path element kind %d", el.Kind))
		}
		if i > 0 {
			cmd = " " + cmd
		}
		if _, err := io.WriteString(w, cmd); err != nil {
			return err
		}
	}
	return nil
}
