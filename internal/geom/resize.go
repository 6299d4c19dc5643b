package geom

import "math"

// Handle identifies a resize handle on a selection box.
type Handle string

const (
	HandleTopLeft     Handle = "top_left_corner"
	HandleTopRight    Handle = "top_right_corner"
	HandleBottomRight Handle = "bottom_right_corner"
	HandleBottomLeft  Handle = "bottom_left_corner"
	HandleTop         Handle = "top_edge"
	HandleRight       Handle = "right_edge"
	HandleBottom      Handle = "bottom_edge"
	HandleLeft        Handle = "left_edge"
	HandleCenter      Handle = "center"
)

// Handles lists every corner and edge handle.
var Handles = []Handle{
	HandleTopLeft, HandleTop, HandleTopRight, HandleRight,
	HandleBottomRight, HandleBottom, HandleBottomLeft, HandleLeft,
}

// IsCorner reports whether h is one of the four corner handles.
func (h Handle) IsCorner() bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft:
		return true
	}
	return false
}

// IsHorizontalEdge reports whether h is the left or right edge: dragging it
// changes the width only.
func (h Handle) IsHorizontalEdge() bool {
	return h == HandleLeft || h == HandleRight
}

// IsVerticalEdge reports whether h is the top or bottom edge.
func (h Handle) IsVerticalEdge() bool {
	return h == HandleTop || h == HandleBottom
}

// Valid reports whether h is a known handle.
func (h Handle) Valid() bool {
	if h == HandleCenter {
		return true
	}
	for _, k := range Handles {
		if k == h {
			return true
		}
	}
	return false
}

// Resized is the result of transforming a bounding box by a handle drag.
// ScaleX and ScaleY are signed: a negative value means the box was flipped on that axis.
type Resized struct {
	Bounds
	ScaleX float64
	ScaleY float64
}

// TransformedBoundingBox computes the bounds that result from dragging handle
// of bounds by delta. Rotation is the rotation of the box in radians; the delta
// is counter-rotated so the drag acts on the box's own axes and the opposite
// anchor stays fixed in page space. When lockAspect is set the original
// width:height ratio is preserved.
func TransformedBoundingBox(bounds Bounds, handle Handle, delta Vec, rotation float64, lockAspect bool) Resized {
	ax0, ay0 := bounds.MinX, bounds.MinY
	ax1, ay1 := bounds.MaxX, bounds.MaxY

	bx0, by0 := bounds.MinX, bounds.MinY
	bx1, by1 := bounds.MaxX, bounds.MaxY

	if handle == HandleCenter {
		return Resized{
			Bounds: Bounds{
				MinX:   bx0 + delta.X,
				MinY:   by0 + delta.Y,
				MaxX:   bx1 + delta.X,
				MaxY:   by1 + delta.Y,
				Width:  bx1 - bx0,
				Height: by1 - by0,
			},
			ScaleX: 1,
			ScaleY: 1,
		}
	}

	d := delta.Rot(-rotation)

	switch handle {
	case HandleTop, HandleTopLeft, HandleTopRight:
		by0 += d.Y
	case HandleBottom, HandleBottomLeft, HandleBottomRight:
		by1 += d.Y
	}
	switch handle {
	case HandleLeft, HandleTopLeft, HandleBottomLeft:
		bx0 += d.X
	case HandleRight, HandleTopRight, HandleBottomRight:
		bx1 += d.X
	}

	aw := ax1 - ax0
	ah := ay1 - ay0

	scaleX := ratio(bx1-bx0, aw)
	scaleY := ratio(by1-by0, ah)
	flipX := scaleX < 0
	flipY := scaleY < 0

	bw := math.Abs(bx1 - bx0)
	bh := math.Abs(by1 - by0)

	if lockAspect && aw != 0 && ah != 0 {
		ar := aw / ah
		isTall := bh == 0 || ar < bw/bh
		signY, signX := -1.0, -1.0
		if flipY {
			signY = 1
		}
		if flipX {
			signX = 1
		}
		tw := bw * signY * (1 / ar)
		th := bh * signX * ar

		switch handle {
		case HandleTopLeft:
			if isTall {
				by0 = by1 + tw
			} else {
				bx0 = bx1 + th
			}
		case HandleTopRight:
			if isTall {
				by0 = by1 + tw
			} else {
				bx1 = bx0 - th
			}
		case HandleBottomRight:
			if isTall {
				by1 = by0 - tw
			} else {
				bx1 = bx0 - th
			}
		case HandleBottomLeft:
			if isTall {
				by1 = by0 - tw
			} else {
				bx0 = bx1 + th
			}
		case HandleTop, HandleBottom:
			m := (bx0 + bx1) / 2
			w := bh * ar
			bx0 = m - w/2
			bx1 = m + w/2
		case HandleLeft, HandleRight:
			m := (by0 + by1) / 2
			h := bw / ar
			by0 = m - h/2
			by1 = m + h/2
		}
	}

	// Keep the anchor opposite the dragged handle fixed in page space.
	if math.Mod(rotation, math.Pi*2) != 0 {
		c0 := Vec{ax0, ay0}.Med(Vec{ax1, ay1})
		c1 := Vec{bx0, by0}.Med(Vec{bx1, by1})

		var b, a Vec
		switch handle {
		case HandleTopLeft:
			b, a = Vec{bx1, by1}, Vec{ax1, ay1}
		case HandleTopRight:
			b, a = Vec{bx0, by1}, Vec{ax0, ay1}
		case HandleBottomRight:
			b, a = Vec{bx0, by0}, Vec{ax0, ay0}
		case HandleBottomLeft:
			b, a = Vec{bx1, by0}, Vec{ax1, ay0}
		case HandleTop:
			b, a = Vec{bx0, by1}.Med(Vec{bx1, by1}), Vec{ax0, ay1}.Med(Vec{ax1, ay1})
		case HandleLeft:
			b, a = Vec{bx1, by0}.Med(Vec{bx1, by1}), Vec{ax1, ay0}.Med(Vec{ax1, ay1})
		case HandleBottom:
			b, a = Vec{bx0, by0}.Med(Vec{bx1, by0}), Vec{ax0, ay0}.Med(Vec{ax1, ay0})
		case HandleRight:
			b, a = Vec{bx0, by0}.Med(Vec{bx0, by1}), Vec{ax0, ay0}.Med(Vec{ax0, ay1})
		}
		cv := b.RotWith(c1, rotation).Sub(a.RotWith(c0, rotation))

		bx0, by0 = bx0-cv.X, by0-cv.Y
		bx1, by1 = bx1-cv.X, by1-cv.Y
	}

	if bx1 < bx0 {
		bx0, bx1 = bx1, bx0
	}
	if by1 < by0 {
		by0, by1 = by1, by0
	}

	sx, sy := 1.0, 1.0
	if flipX {
		sx = -1
	}
	if flipY {
		sy = -1
	}

	return Resized{
		Bounds: Bounds{
			MinX:   bx0,
			MinY:   by0,
			MaxX:   bx1,
			MaxY:   by1,
			Width:  bx1 - bx0,
			Height: by1 - by0,
		},
		ScaleX: ratio((bx1-bx0)*sx, aw),
		ScaleY: ratio((by1-by0)*sy, ah),
	}
}

// ratio divides n by d; a degenerate (zero) d yields a unit ratio carrying n's sign.
func ratio(n, d float64) float64 {
	if d == 0 {
		if n < 0 {
			return -1
		}
		return 1
	}
	return n / d
}

// RelativeTransformedBoundingBox places shapeBounds, which sat inside
// initialBounds, at the same relative position and proportion inside bounds.
// When an axis is flipped the shape's offset is measured from the opposite edge.
func RelativeTransformedBoundingBox(bounds, initialBounds, shapeBounds Bounds, flipX, flipY bool) Bounds {
	var nx, ny, nw, nh float64
	if initialBounds.Width != 0 {
		if flipX {
			nx = (initialBounds.MaxX - shapeBounds.MaxX) / initialBounds.Width
		} else {
			nx = (shapeBounds.MinX - initialBounds.MinX) / initialBounds.Width
		}
		nw = shapeBounds.Width / initialBounds.Width
	}
	if initialBounds.Height != 0 {
		if flipY {
			ny = (initialBounds.MaxY - shapeBounds.MaxY) / initialBounds.Height
		} else {
			ny = (shapeBounds.MinY - initialBounds.MinY) / initialBounds.Height
		}
		nh = shapeBounds.Height / initialBounds.Height
	}

	minX := bounds.MinX + bounds.Width*nx
	minY := bounds.MinY + bounds.Height*ny
	width := bounds.Width * nw
	height := bounds.Height * nh

	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   minX + width,
		MaxY:   minY + height,
		Width:  width,
		Height: height,
	}
}
