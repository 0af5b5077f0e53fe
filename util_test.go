package slur

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := math.Hypot(got.X-want.X, got.Y-want.Y); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// beyond reports whether a lies at least as far from the staff as b on side p.
func beyond(p Placement, a, b float64) bool {
	if p == Above {
		return a <= b
	}
	return a >= b
}
