// Package viewport tracks the camera over the page.
package viewport

import (
	"math"

	"github.com/inamate/whiteboard/internal/geom"
)

// Camera is the view transform: page = screen/Zoom - Point.
type Camera struct {
	Point geom.Vec `json:"point"`
	Zoom  float64  `json:"zoom"`
}

type Viewport struct {
	camera  Camera
	minZoom float64
	maxZoom float64
}

// New creates a viewport at the page origin, zoom 1, clamping zoom to
// [minZoom, maxZoom].
func New(minZoom, maxZoom float64) *Viewport {
	if minZoom <= 0 {
		minZoom = 0.1
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return &Viewport{camera: Camera{Zoom: 1}, minZoom: minZoom, maxZoom: maxZoom}
}

func (v *Viewport) Camera() Camera { return v.camera }

// ScreenToPage converts a screen point to page space.
func (v *Viewport) ScreenToPage(p geom.Vec) geom.Vec {
	return p.Div(v.camera.Zoom).Sub(v.camera.Point)
}

// PageToScreen converts a page point to screen space.
func (v *Viewport) PageToScreen(p geom.Vec) geom.Vec {
	return p.Add(v.camera.Point).Mul(v.camera.Zoom)
}

// PanCamera moves the view by a screen-space delta.
func (v *Viewport) PanCamera(delta geom.Vec) {
	v.camera.Point = v.camera.Point.Sub(delta.Div(v.camera.Zoom))
}

// PinchCamera zooms to zoom about the screen point, after panning by delta.
// The page point under the pinch stays under it.
func (v *Viewport) PinchCamera(point, delta geom.Vec, zoom float64) {
	z := v.clamp(zoom)
	next := v.camera.Point.Sub(delta.Div(v.camera.Zoom))
	p0 := point.Div(v.camera.Zoom).Sub(next)
	p1 := point.Div(z).Sub(next)
	v.camera = Camera{Point: next.Add(p1.Sub(p0)), Zoom: z}
}

// SetCamera replaces the camera, clamping its zoom.
func (v *Viewport) SetCamera(c Camera) {
	c.Zoom = v.clamp(c.Zoom)
	v.camera = c
}

func (v *Viewport) clamp(z float64) float64 {
	if math.IsNaN(z) {
		return v.camera.Zoom
	}
	return math.Max(v.minZoom, math.Min(v.maxZoom, z))
}
