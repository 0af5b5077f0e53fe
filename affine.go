package slur

import "math"

// Affine is a 2D affine transform with coefficients (N0, ..., N5), mapping
// (x, y) to (N0*x + N2*y + N4, N1*x + N3*y + N5).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns a transform scaling X by x and Y by y.
func Scale(x, y float64) Affine {
	return Affine{N0: x, N3: y}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y}
}

// Mul returns the transform applying o first and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by Scale(x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Matrix2D is the 2×2 matrix
//
//	| M00 M01 |
//	| M10 M11 |
//
// applied to column vectors. The solver only builds rotations with it, whose
// transpose is their inverse.
type Matrix2D struct {
	M00, M01 float64
	M10, M11 float64
}

// RotationMatrix returns the matrix rotating by th radians, turning the
// positive X axis towards positive Y.
func RotationMatrix(th float64) Matrix2D {
	sin, cos := math.Sincos(th)
	return Matrix2D{
		cos, -sin,
		sin, cos,
	}
}

func (m Matrix2D) Transpose() Matrix2D {
	return Matrix2D{
		m.M00, m.M10,
		m.M01, m.M11,
	}
}

// Affine returns m as a transform without translation.
func (m Matrix2D) Affine() Affine {
	return Affine{N0: m.M00, N1: m.M10, N2: m.M01, N3: m.M11}
}
