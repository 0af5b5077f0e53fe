package slur

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// PNGOptions configures [RenderPNG].
type PNGOptions struct {
	// Pixels per staff unit.
	Scale float64
	// The staff is rendered at Supersample times the size and scaled down.
	Supersample int
	// Vertical range drawn, in staff units.
	Top, Bottom float64
	// Thickness of slurs at their apex, in staff units.
	Thickness float64
	// Thickness of the sky and bottom lines, in staff units.
	LineWidth float64

	Background color.Color
	Sky        color.Color
	BottomLine color.Color
	Ink        color.Color
}

// DefaultPNGOptions returns defaults suitable for inspecting a single staff
// line.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Scale:       10,
		Supersample: 4,
		Top:         -10,
		Bottom:      14,
		Thickness:   0.3,
		LineWidth:   0.1,
		Background:  color.RGBA{255, 255, 255, 255},
		Sky:         color.RGBA{46, 125, 50, 255},
		BottomLine:  color.RGBA{21, 101, 192, 255},
		Ink:         color.RGBA{51, 51, 51, 255},
	}
}

// RenderPNG draws the sky and bottom lines of line and the outlines of
// segments, and writes the result to w as a PNG.
func RenderPNG(w io.Writer, line *StaffLine, segments []*Segment, opts PNGOptions) error {
	img := renderStaffLine(line, segments, opts)
	return png.Encode(w, img)
}

func renderStaffLine(line *StaffLine, segments []*Segment, opts PNGOptions) *image.RGBA {
	ss := max(opts.Supersample, 1)
	width := max(int(math.Ceil(line.Width*opts.Scale)), 1)
	height := max(int(math.Ceil((opts.Bottom-opts.Top)*opts.Scale)), 1)

	large := image.NewRGBA(image.Rect(0, 0, width*ss, height*ss))
	draw.Draw(large, large.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	px := opts.Scale * float64(ss)
	view := Translate(Vec(0, -opts.Top)).ThenScale(px, px)
	z := vector.NewRasterizer(large.Bounds().Dx(), large.Bounds().Dy())

	fill := func(paths []BezPath, c color.Color) {
		z.Reset(large.Bounds().Dx(), large.Bounds().Dy())
		for _, p := range paths {
			rasterize(z, p.Transform(view))
		}
		z.Draw(large, large.Bounds(), image.NewUniform(c), image.Point{})
	}

	if h := line.Heightmap; h != nil {
		fill(silhouette(h, Above, opts.LineWidth), opts.Sky)
		fill(silhouette(h, Below, opts.LineWidth), opts.BottomLine)
	}
	outlines := make([]BezPath, 0, len(segments))
	for _, s := range segments {
		if s.Curve.IsNaN() || s.Curve.IsInf() {
			continue
		}
		outlines = append(outlines, s.Outline(opts.Thickness))
	}
	fill(outlines, opts.Ink)

	if ss == 1 {
		return large
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(img, img.Bounds(), large, large.Bounds(), draw.Over, nil)
	return img
}

// silhouette returns one thin band per heightmap column on side p, on the
// side of the recorded extent facing the staff.
func silhouette(h *Heightmap, p Placement, lineWidth float64) []BezPath {
	line := h.line(p)
	var paths []BezPath
	for i, y := range line {
		if isNoData(y) {
			continue
		}
		x0 := float64(i) / h.SamplingUnit
		x1 := float64(i+1) / h.SamplingUnit
		r := NewRectFromPoints(Pt(x0, y), Pt(x1, y-p.sign()*lineWidth))
		paths = append(paths, r.Path())
	}
	return paths
}

// rasterize adds the outline of p to z.
func rasterize(z *vector.Rasterizer, p BezPath) {
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case LineToKind:
			z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case CubicToKind:
			z.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case ClosePathKind:
			z.ClosePath()
		}
	}
}
