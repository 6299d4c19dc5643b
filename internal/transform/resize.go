// Package transform turns pointer deltas into shape updates for the resize,
// translate and rotate gestures. Each gesture captures the selection once,
// when it begins, and every step is computed from that capture rather than
// from the live document.
package transform

import (
	"math"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/shape"
)

// ResizeSnapshot is what a resize gesture remembers about one shape.
type ResizeSnapshot struct {
	Shape  document.Shape
	Bounds geom.Bounds
	// TransformOrigin is the shape's center within the selection bounds,
	// InnerTransformOrigin its center within the bounds of all centers.
	TransformOrigin      geom.Vec
	InnerTransformOrigin geom.Vec
	IsAspectRatioLocked  bool
	Capabilities         shape.Capabilities
}

// Resize is one resize gesture over a fixed selection.
type Resize struct {
	registry      *shape.Registry
	handle        geom.Handle
	single        bool
	rotation      float64
	initialBounds geom.Bounds
	snapshots     []ResizeSnapshot
}

// ResizeStep is the outcome of one pointer move.
type ResizeStep struct {
	Bounds  geom.Bounds
	ScaleX  float64
	ScaleY  float64
	Cursor  input.Cursor
	Updates map[string]document.Partial
}

// NewResize captures shapes for a resize by handle. A single shape is resized
// in its own rotated frame; a group is resized by its axis-aligned bounds.
func NewResize(reg *shape.Registry, shapes []document.Shape, handle geom.Handle) *Resize {
	r := &Resize{registry: reg, handle: handle, single: len(shapes) == 1}
	if len(shapes) == 0 {
		return r
	}

	bounds := make([]geom.Bounds, len(shapes))
	centers := make([]geom.Vec, len(shapes))
	for i, s := range shapes {
		b := reg.Bounds(s)
		b.Rotation = 0
		bounds[i] = b
		centers[i] = b.Center()
	}

	if r.single {
		r.rotation = shapes[0].Rotation
		r.initialBounds = bounds[0]
	} else {
		rotated := make([]geom.Bounds, len(shapes))
		for i, s := range shapes {
			rotated[i] = reg.RotatedBounds(s)
		}
		r.initialBounds = geom.CommonBounds(rotated...)
	}
	inner := geom.BoundsFromPoints(centers...)

	for i, s := range shapes {
		caps := reg.Capabilities(s)
		r.snapshots = append(r.snapshots, ResizeSnapshot{
			Shape:  s.Clone(),
			Bounds: bounds[i],
			TransformOrigin: geom.V(
				normalize(centers[i].X-r.initialBounds.MinX, r.initialBounds.Width),
				normalize(centers[i].Y-r.initialBounds.MinY, r.initialBounds.Height),
			),
			InnerTransformOrigin: geom.V(
				normalize(centers[i].X-inner.MinX, inner.Width),
				normalize(centers[i].Y-inner.MinY, inner.Height),
			),
			IsAspectRatioLocked: caps.IsAspectRatioLocked || !caps.CanChangeAspectRatio ||
				(!r.single && s.Rotation != 0),
			Capabilities: caps,
		})
	}
	return r
}

// normalize divides n by d; a zero-sized reference puts everything in the middle.
func normalize(n, d float64) float64 {
	if d == 0 {
		return 0.5
	}
	return n / d
}

// Empty reports whether there is nothing to resize.
func (r *Resize) Empty() bool { return len(r.snapshots) == 0 }

// InitialBounds returns the selection bounds captured at the start.
func (r *Resize) InitialBounds() geom.Bounds {
	b := r.initialBounds
	b.Rotation = r.rotation
	return b
}

// Snapshots returns the captured shapes.
func (r *Resize) Snapshots() []ResizeSnapshot { return r.snapshots }

// Start returns the updates the shape kinds want when the gesture begins.
func (r *Resize) Start() map[string]document.Partial {
	updates := make(map[string]document.Partial)
	for _, snap := range r.snapshots {
		p := r.registry.ResizeStart(snap.Shape, shape.ResizeStartInfo{IsSingle: r.single})
		if !p.IsEmpty() {
			updates[snap.Shape.ID] = p
		}
	}
	return updates
}

// Revert returns updates that put every shape back where it was captured.
func (r *Resize) Revert() map[string]document.Partial {
	updates := make(map[string]document.Partial, len(r.snapshots))
	for _, snap := range r.snapshots {
		updates[snap.Shape.ID] = snap.Shape.AsPartial()
	}
	return updates
}

// Step computes the shape updates for a drag of delta from the origin point.
func (r *Resize) Step(delta geom.Vec, mods input.Modifiers) ResizeStep {
	if r.Empty() {
		return ResizeStep{Updates: map[string]document.Partial{}}
	}
	if mods.Alt {
		delta = delta.Mul(2)
	}

	resized := geom.TransformedBoundingBox(r.initialBounds, r.handle, delta, r.rotation, r.lockAspect(mods))
	next := resized.Bounds
	if mods.Alt {
		next = next.CenterAt(r.initialBounds.Center())
	}
	next.Rotation = r.rotation
	sx, sy := resized.ScaleX, resized.ScaleY
	flipX, flipY := sx < 0, sy < 0

	var dim float64
	switch {
	case r.handle.IsHorizontalEdge():
		dim = math.Abs(sx)
	case r.handle.IsVerticalEdge():
		dim = math.Abs(sy)
	default:
		dim = math.Min(math.Abs(sx), math.Abs(sy))
	}

	updates := make(map[string]document.Partial, len(r.snapshots))
	for _, snap := range r.snapshots {
		caps := snap.Capabilities
		if !caps.CanResize && r.single {
			continue
		}

		rel := geom.RelativeTransformedBoundingBox(next, r.initialBounds, snap.Bounds, flipX, flipY)
		center := rel.Center()
		scale := geom.V(sx, sy)
		rotation := snap.Shape.Rotation

		if !caps.CanFlip {
			scale = scale.Abs()
		}
		if !caps.CanScale {
			scale = snap.Shape.Scale
		}
		if rotation != 0 && flipX != flipY {
			rotation = -rotation
		}

		if snap.IsAspectRatioLocked || !caps.CanResize || caps.IsSizeLocked {
			w, h := snap.Bounds.Width, snap.Bounds.Height
			if snap.IsAspectRatioLocked {
				w *= dim
				h *= dim
			}
			ox, oy := snap.InnerTransformOrigin.X, snap.InnerTransformOrigin.Y
			if flipX {
				ox = 1 - ox
			}
			if flipY {
				oy = 1 - oy
			}
			center = geom.V(
				next.MinX+ox*(next.Width-w)+w/2,
				next.MinY+oy*(next.Height-h)+h/2,
			)
			rel = geom.NewBounds(geom.Vec{}, geom.V(w, h)).CenterAt(center)
		}

		p := r.registry.Resize(snap.Shape, shape.TransformRecord{
			Center:          center,
			Rotation:        rotation,
			Scale:           scale,
			Bounds:          rel,
			Handle:          r.handle,
			Clip:            mods.Ctrl,
			TransformOrigin: snap.TransformOrigin,
			FlipX:           flipX && caps.CanFlip,
			FlipY:           flipY && caps.CanFlip,
		})
		if !p.IsEmpty() {
			updates[snap.Shape.ID] = p
		}
	}

	return ResizeStep{
		Bounds:  next,
		ScaleX:  sx,
		ScaleY:  sy,
		Cursor:  ResizeCursor(r.handle, sx, sy),
		Updates: updates,
	}
}

// lockAspect decides whether the selection keeps its aspect ratio. Shift
// always locks. A lone shape locks when it cannot change its ratio or is
// locked itself, unless ctrl is held on a shape that can be clipped.
func (r *Resize) lockAspect(mods input.Modifiers) bool {
	if mods.Shift {
		return true
	}
	if !r.single {
		return false
	}
	caps := r.snapshots[0].Capabilities
	if mods.Ctrl {
		return !caps.CanClip
	}
	return !caps.CanChangeAspectRatio || caps.IsAspectRatioLocked
}

// ResizeCursor returns the cursor for handle, swapping the two diagonal
// cursors when exactly one axis is flipped.
func ResizeCursor(h geom.Handle, scaleX, scaleY float64) input.Cursor {
	c := input.HandleCursor(h)
	if !h.IsCorner() || (scaleX < 0) == (scaleY < 0) {
		return c
	}
	if c == input.CursorNwseResize {
		return input.CursorNeswResize
	}
	return input.CursorNwseResize
}
