package transform

import (
	"math"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/shape"
)

type rotateSnapshot struct {
	shape  document.Shape
	center geom.Vec
}

// Rotate spins a fixed set of shapes about the center of their common bounds.
type Rotate struct {
	center    geom.Vec
	origin    geom.Vec
	snapshots []rotateSnapshot
}

// NewRotate captures shapes for a rotation that starts at page point origin.
func NewRotate(reg *shape.Registry, shapes []document.Shape, origin geom.Vec) *Rotate {
	r := &Rotate{origin: origin}
	if len(shapes) == 0 {
		return r
	}
	rotated := make([]geom.Bounds, len(shapes))
	for i, s := range shapes {
		rotated[i] = reg.RotatedBounds(s)
		r.snapshots = append(r.snapshots, rotateSnapshot{shape: s.Clone(), center: reg.Center(s)})
	}
	r.center = geom.CommonBounds(rotated...).Center()
	return r
}

// Center returns the pivot.
func (r *Rotate) Center() geom.Vec { return r.center }

// Empty reports whether there is nothing to rotate.
func (r *Rotate) Empty() bool { return len(r.snapshots) == 0 }

// Angle returns the rotation from the origin to current about the pivot,
// snapped to multiples of snap when snap is positive.
func (r *Rotate) Angle(current geom.Vec, snap float64) float64 {
	a := r.center.Angle(current) - r.center.Angle(r.origin)
	if snap > 0 {
		a = math.Round(a/snap) * snap
	}
	return a
}

// Step returns updates rotating every shape by the angle from the origin to current.
func (r *Rotate) Step(current geom.Vec, snap float64) map[string]document.Partial {
	a := r.Angle(current, snap)
	updates := make(map[string]document.Partial, len(r.snapshots))
	for _, s := range r.snapshots {
		c := s.center.RotWith(r.center, a)
		updates[s.shape.ID] = document.Partial{
			Point:    document.Ptr(s.shape.Point.Add(c.Sub(s.center))),
			Rotation: document.Ptr(normalizeAngle(s.shape.Rotation + a)),
		}
	}
	return updates
}

// Revert returns updates restoring every captured point and rotation.
func (r *Rotate) Revert() map[string]document.Partial {
	updates := make(map[string]document.Partial, len(r.snapshots))
	for _, s := range r.snapshots {
		updates[s.shape.ID] = document.Partial{
			Point:    document.Ptr(s.shape.Point),
			Rotation: document.Ptr(s.shape.Rotation),
		}
	}
	return updates
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
