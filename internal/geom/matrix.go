package geom

import "math"

// Matrix2D represents a 2D affine transformation matrix.
// Layout: [a, b, c, d, e, f] representing:
// | a  c  e |
// | b  d  f |
// | 0  0  1 |
//
// Where:
// - a, d = scale
// - b, c = skew/rotation
// - e, f = translation
type Matrix2D [6]float64

// Identity returns the identity matrix.
func Identity() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(t Vec) Matrix2D {
	return Matrix2D{1, 0, 0, 1, t.X, t.Y}
}

// Rotate returns a rotation matrix (angle in radians).
func Rotate(radians float64) Matrix2D {
	sin, cos := math.Sincos(radians)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// around conjugates m with a translation so that it operates about c.
func (m Matrix2D) around(c Vec) Matrix2D {
	return Translate(c).Multiply(m).Multiply(Translate(Vec{-c.X, -c.Y}))
}

// Multiply multiplies this matrix by another: result = m * other
// This applies 'other' first, then 'm'.
func (m Matrix2D) Multiply(other Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*other[0] + m[2]*other[1],        // a
		m[1]*other[0] + m[3]*other[1],        // b
		m[0]*other[2] + m[2]*other[3],        // c
		m[1]*other[2] + m[3]*other[3],        // d
		m[0]*other[4] + m[2]*other[5] + m[4], // e
		m[1]*other[4] + m[3]*other[5] + m[5], // f
	}
}

// Apply transforms a point.
func (m Matrix2D) Apply(p Vec) Vec {
	return Vec{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyBounds transforms the four corners of b and returns their axis-aligned bounding box.
func (m Matrix2D) ApplyBounds(b Bounds) Bounds {
	return BoundsFromPoints(
		m.Apply(Vec{b.MinX, b.MinY}),
		m.Apply(Vec{b.MaxX, b.MinY}),
		m.Apply(Vec{b.MaxX, b.MaxY}),
		m.Apply(Vec{b.MinX, b.MaxY}),
	)
}

// Determinant returns the determinant of the matrix.
func (m Matrix2D) Determinant() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Invert returns the inverse of the matrix, or Identity if not invertible.
func (m Matrix2D) Invert() Matrix2D {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix2D{
		m[3] * invDet,
		-m[1] * invDet,
		-m[2] * invDet,
		m[0] * invDet,
		(m[2]*m[5] - m[3]*m[4]) * invDet,
		(m[1]*m[4] - m[0]*m[5]) * invDet,
	}
}

// FromTransform rotates and scales about anchor (in local coordinates), then
// translates by point: Translate(point+anchor) * Rotate(r) * Scale(scale) * Translate(-anchor).
func FromTransform(point Vec, scale Vec, radians float64, anchor Vec) Matrix2D {
	sin, cos := math.Sincos(radians)
	sx, sy := scale.X, scale.Y
	ax, ay := anchor.X, anchor.Y

	return Matrix2D{
		cos * sx,                             // a
		sin * sx,                             // b
		-sin * sy,                            // c
		cos * sy,                             // d
		point.X + ax - cos*sx*ax + sin*sy*ay, // e
		point.Y + ay - sin*sx*ax - cos*sy*ay, // f
	}
}
