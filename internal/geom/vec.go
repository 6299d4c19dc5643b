package geom

import "math"

// Vec is a 2D point or vector in page space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec        { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec        { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Mul(n float64) Vec    { return Vec{v.X * n, v.Y * n} }
func (v Vec) Div(n float64) Vec    { return Vec{v.X / n, v.Y / n} }
func (v Vec) MulV(o Vec) Vec       { return Vec{v.X * o.X, v.Y * o.Y} }
func (v Vec) Abs() Vec             { return Vec{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64   { return v.Sub(o).Len() }
func (v Vec) Med(o Vec) Vec        { return v.Add(o).Div(2) }
func (v Vec) Equal(o Vec) bool     { return v.X == o.X && v.Y == o.Y }
func (v Vec) Angle(to Vec) float64 { return math.Atan2(to.Y-v.Y, to.X-v.X) }

// Rot rotates v about the origin by r radians.
func (v Vec) Rot(r float64) Vec {
	s, c := math.Sincos(r)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// RotWith rotates v about center c by r radians.
func (v Vec) RotWith(c Vec, r float64) Vec {
	if r == 0 {
		return v
	}
	return Rotate(r).around(c).Apply(v)
}

// Min returns the component-wise minimum.
func (v Vec) Min(o Vec) Vec { return Vec{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }

// Max returns the component-wise maximum.
func (v Vec) Max(o Vec) Vec { return Vec{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }

// NearlyEqual reports whether v and o differ by less than eps on both axes.
func (v Vec) NearlyEqual(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) < eps && math.Abs(v.Y-o.Y) < eps
}

// DistToSegment returns the distance from v to the segment ab.
func (v Vec) DistToSegment(a, b Vec) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return v.Dist(a)
	}
	ap := v.Sub(a)
	t := math.Max(0, math.Min(1, (ap.X*ab.X+ap.Y*ab.Y)/l2))
	return v.Dist(a.Add(ab.Mul(t)))
}
