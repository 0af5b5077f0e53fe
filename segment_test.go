package slur

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentCalculate(t *testing.T) {
	sc := newTestScene(5, 45)
	seg := sc.segment(0, 1)
	seg.Calculate(DefaultEngravingRules())

	if seg.Placement != Below {
		t.Fatalf("got %s, want Below", seg.Placement)
	}
	diff(t, Pt(5, 1), seg.Curve.P0)
	diff(t, Pt(45, 1), seg.Curve.P3)
	assertNear(t, seg.Curve.P1, Pt(11.928203230, 5), 1e-6)
	assertNear(t, seg.Curve.P2, Pt(38.071796770, 5), 1e-6)
	diff(t, 0, seg.Fit.Obstacles)

	h := sc.line.Heightmap
	diff(t, 4.0, h.Bottom[25], cmpopts.EquateApprox(0, 1e-9))
	if !isNoData(h.Sky[25]) {
		t.Errorf("the sky was written: %g", h.Sky[25])
	}
}

func TestSegmentAvoidsEarlierSlur(t *testing.T) {
	rules := DefaultEngravingRules()
	sc := newTestScene(5, 25, 45)
	first := NewSegment(NewSlur(sc.notes[0], sc.notes[2]), sc.line, sc.entries)
	first.Calculate(rules)

	// A second slur over the same notes, forced to the same side, sees the
	// first one as an obstacle and rises above it.
	sc.measure.MultipleVoices = true
	sc.notes[1].Voice.Linked = true
	second := NewSegment(NewSlur(sc.notes[1], sc.notes[2]), sc.line, sc.entries[1:])
	second.Calculate(rules)
	if second.Placement != Below {
		t.Fatalf("got %s, want Below", second.Placement)
	}
	if second.Fit.Obstacles == 0 {
		t.Error("the first slur wasn't sampled")
	}
	if second.Fit.LeftSlope <= 0 {
		t.Errorf("got left slope %g, want a rising tangent", second.Fit.LeftSlope)
	}
}

func TestLayoutSlursOrder(t *testing.T) {
	sc := newTestScene(5, 25, 35, 45)
	long := NewSegment(NewSlur(sc.notes[0], sc.notes[3]), sc.line, sc.entries)
	short := NewSegment(NewSlur(sc.notes[1], sc.notes[2]), sc.line, sc.entries[1:3])
	segments := []*Segment{short, long}
	LayoutSlurs(segments, DefaultEngravingRules())

	// The long slur starts further left, so it is laid out first and takes
	// the empty side below; the short one then finds it and goes above.
	if long.Placement != Below {
		t.Errorf("long slur: got %s, want Below", long.Placement)
	}
	if short.Placement != Above {
		t.Errorf("short slur: got %s, want Above", short.Placement)
	}
	diff(t, Pt(25, -1), short.Curve.P0)
	if segments[0] != short || segments[1] != long {
		t.Error("the argument was reordered")
	}
}

func TestSegmentContinuation(t *testing.T) {
	prev := newTestScene(40)
	sc := newTestScene(10)
	sc.measure.BeginInstructionsWidth = 3
	s := NewSlur(prev.notes[0], sc.notes[0])
	seg := NewSegment(s, sc.line, sc.entries)
	seg.Calculate(DefaultEngravingRules())

	if seg.Placement != Below {
		t.Fatalf("got %s, want Below", seg.Placement)
	}
	diff(t, Pt(3, 1), seg.Curve.P0)
	diff(t, Pt(10, 1), seg.Curve.P3)
}

func TestSegmentTiedStart(t *testing.T) {
	prev := newTestScene(40)
	sc := newTestScene(10, 30)
	NewTie(prev.notes[0], sc.notes[0])
	seg := NewSegment(NewSlur(prev.notes[0], sc.notes[1]), sc.line, sc.entries)
	seg.Calculate(DefaultEngravingRules())

	// The slur starts at the continuation of the tie, not at the line start.
	diff(t, Pt(10, 1), seg.Curve.P0)
	diff(t, Pt(30, 1), seg.Curve.P3)
}

func TestSegmentPanics(t *testing.T) {
	sc := newTestScene(5, 45)
	tests := []struct {
		name string
		seg  *Segment
	}{
		{"no entries", NewSegment(NewSlur(sc.notes[0], sc.notes[1]), sc.line, nil)},
		{"no heightmap", NewSegment(NewSlur(sc.notes[0], sc.notes[1]), &StaffLine{Width: 50}, sc.entries)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("didn't panic")
				}
			}()
			tt.seg.Calculate(DefaultEngravingRules())
		})
	}
}

func TestSegmentOutline(t *testing.T) {
	seg := &Segment{
		Placement: Above,
		Curve:     CubicBez{Pt(0, 0), Pt(2, -3), Pt(8, -3), Pt(10, 0)},
	}
	want := BezPath{
		{Kind: MoveToKind, P0: Pt(0, 0)},
		{Kind: CubicToKind, P0: Pt(2, -3), P1: Pt(8, -3), P2: Pt(10, 0)},
		{Kind: CubicToKind, P0: Pt(8, -3.5), P1: Pt(2, -3.5), P2: Pt(0, 0)},
		{Kind: ClosePathKind},
	}
	diff(t, want, seg.Outline(0.5))
}
