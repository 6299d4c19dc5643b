package geom

import "math"

// Bounds is an axis-aligned bounding box. Rotation, when set, is the rotation
// of the box about its own center; the min/max fields describe the unrotated box.
type Bounds struct {
	MinX     float64 `json:"minX"`
	MinY     float64 `json:"minY"`
	MaxX     float64 `json:"maxX"`
	MaxY     float64 `json:"maxY"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

// NewBounds builds bounds from a top-left point and a size.
func NewBounds(point, size Vec) Bounds {
	return Bounds{
		MinX:   point.X,
		MinY:   point.Y,
		MaxX:   point.X + size.X,
		MaxY:   point.Y + size.Y,
		Width:  size.X,
		Height: size.Y,
	}
}

// BoundsFromPoints returns the smallest bounds containing every point.
// No points yields zero bounds.
func BoundsFromPoints(points ...Vec) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// CommonBounds returns the union of all given bounds.
func CommonBounds(bs ...Bounds) Bounds {
	if len(bs) == 0 {
		return Bounds{}
	}
	result := bs[0]
	result.Rotation = 0
	for _, b := range bs[1:] {
		result = result.Union(b)
	}
	return result
}

// Min returns the top-left corner.
func (b Bounds) Min() Vec { return Vec{b.MinX, b.MinY} }

// Size returns width and height as a vector.
func (b Bounds) Size() Vec { return Vec{b.Width, b.Height} }

// Center returns the center point of the bounds.
func (b Bounds) Center() Vec {
	return Vec{b.MinX + b.Width/2, b.MinY + b.Height/2}
}

// CenterAt moves the bounds so that their center lies at c.
func (b Bounds) CenterAt(c Vec) Bounds {
	minX := c.X - b.Width/2
	minY := c.Y - b.Height/2
	return Bounds{
		MinX:     minX,
		MinY:     minY,
		MaxX:     minX + b.Width,
		MaxY:     minY + b.Height,
		Width:    b.Width,
		Height:   b.Height,
		Rotation: b.Rotation,
	}
}

// Translate offsets the bounds by d.
func (b Bounds) Translate(d Vec) Bounds {
	b.MinX += d.X
	b.MaxX += d.X
	b.MinY += d.Y
	b.MaxY += d.Y
	return b
}

// Rotated returns the axis-aligned bounds of b rotated by r about its center.
func (b Bounds) Rotated(r float64) Bounds {
	if r == 0 {
		return b
	}
	return Rotate(r).around(b.Center()).ApplyBounds(b)
}

// Corners returns the four corners clockwise from the top-left, rotated by b.Rotation.
func (b Bounds) Corners() []Vec {
	c := b.Center()
	return []Vec{
		Vec{b.MinX, b.MinY}.RotWith(c, b.Rotation),
		Vec{b.MaxX, b.MinY}.RotWith(c, b.Rotation),
		Vec{b.MaxX, b.MaxY}.RotWith(c, b.Rotation),
		Vec{b.MinX, b.MaxY}.RotWith(c, b.Rotation),
	}
}

// Contains checks if a point is inside the bounds.
func (b Bounds) Contains(p Vec) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsBounds reports whether o lies entirely within b.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// Collides reports whether b and o overlap, edges included.
func (b Bounds) Collides(o Bounds) bool {
	return !(b.MaxX < o.MinX || b.MinX > o.MaxX || b.MaxY < o.MinY || b.MinY > o.MaxY)
}

// IsEmpty checks if the bounds have zero or negative area.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Union returns the smallest bounds containing both.
func (b Bounds) Union(o Bounds) Bounds {
	minX := math.Min(b.MinX, o.MinX)
	minY := math.Min(b.MinY, o.MinY)
	maxX := math.Max(b.MaxX, o.MaxX)
	maxY := math.Max(b.MaxY, o.MaxY)

	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
