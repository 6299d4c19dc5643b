package editor

import (
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
)

// Hit areas in screen pixels.
const (
	handleRadius       = 8
	rotateHandleOffset = 24
	lineTolerance      = 4
)

// HitTest reports what lies under the page point p. The selection's handles
// are on top of everything, then shapes front to back, then the selection
// box itself. A hit on a child shape reports its top-level ancestor.
func (e *Editor) HitTest(p geom.Vec) input.Target {
	zoom := e.viewport.Camera().Zoom
	sb, hasSelection := e.SelectionBounds()

	if hasSelection {
		if h, ok := hitHandle(sb, p, handleRadius/zoom, rotateHandleOffset/zoom); ok {
			return h
		}
	}

	doc := e.store.Snapshot()
	for i := len(doc.Order) - 1; i >= 0; i-- {
		sh, ok := doc.Shapes[doc.Order[i]]
		if !ok {
			continue
		}
		if e.hitShape(sh, p, lineTolerance/zoom) {
			return input.Target{Kind: input.TargetShape, ShapeID: topLevel(doc, sh.ID)}
		}
	}

	if hasSelection && sb.Contains(toLocal(sb, p)) {
		return input.Target{Kind: input.TargetSelection}
	}
	return input.Target{Kind: input.TargetCanvas}
}

// hitHandle tests the rotate handle, the corners and then the edges of the
// selection box b.
func hitHandle(b geom.Bounds, p geom.Vec, radius, offset float64) (input.Target, bool) {
	c := b.Center()
	rot := geom.V(c.X, b.MinY-offset).RotWith(c, b.Rotation)
	if p.Dist(rot) <= radius {
		return input.Target{Kind: input.TargetRotateHandle}, true
	}

	corners := b.Corners()
	for i, h := range []geom.Handle{geom.HandleTopLeft, geom.HandleTopRight, geom.HandleBottomRight, geom.HandleBottomLeft} {
		if p.Dist(corners[i]) <= radius {
			return input.Target{Kind: input.TargetResizeHandle, Handle: h}, true
		}
	}
	for i, h := range []geom.Handle{geom.HandleTop, geom.HandleRight, geom.HandleBottom, geom.HandleLeft} {
		if p.DistToSegment(corners[i], corners[(i+1)%4]) <= radius/2 {
			return input.Target{Kind: input.TargetResizeHandle, Handle: h}, true
		}
	}
	return input.Target{}, false
}

func (e *Editor) hitShape(sh document.Shape, p geom.Vec, tolerance float64) bool {
	b := e.shapes.Bounds(sh)
	local := toLocal(b, p)
	if sh.Type == document.ShapeTypeLine && len(sh.Handles) > 1 {
		for i := 1; i < len(sh.Handles); i++ {
			a := sh.Point.Add(sh.Handles[i-1])
			z := sh.Point.Add(sh.Handles[i])
			if local.DistToSegment(a, z) <= tolerance {
				return true
			}
		}
		return false
	}
	return b.Contains(local)
}

// toLocal undoes the rotation of b about its center.
func toLocal(b geom.Bounds, p geom.Vec) geom.Vec {
	if b.Rotation == 0 {
		return p
	}
	return geom.FromTransform(geom.Vec{}, geom.V(1, 1), b.Rotation, b.Center()).Invert().Apply(p)
}

func topLevel(doc document.Document, id string) string {
	seen := make(map[string]bool)
	for !seen[id] {
		seen[id] = true
		sh, ok := doc.Shapes[id]
		if !ok || sh.ParentID == "" {
			return id
		}
		id = sh.ParentID
	}
	return id
}
