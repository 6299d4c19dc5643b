// Package shape defines the capability contract every shape kind honors and
// the built-in kinds: box, ellipse, line, text and image.
//
// The geometry engine never looks at a concrete kind. It reads Capabilities,
// hands a TransformRecord to OnResize and writes back the Partial the kind
// returns.
package shape

import (
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
)

// Capabilities are the flags a shape exposes to the transform engine.
type Capabilities struct {
	CanResize            bool
	CanFlip              bool
	CanScale             bool
	CanChangeAspectRatio bool
	// CanClip marks shapes whose content can be cropped; holding ctrl while
	// resizing such a shape releases the aspect-ratio lock.
	CanClip bool
	// Per-model locks, filled in from the shape model by Registry.Capabilities.
	IsAspectRatioLocked bool
	IsSizeLocked        bool
}

// ResizeStartInfo is passed to OnResizeStart when a resize gesture begins.
type ResizeStartInfo struct {
	IsSingle bool
}

// TransformRecord describes where a resize gesture wants a shape to be. The
// kind decides how that maps onto its own fields.
//
// Scale is the shape's own scale for kinds that cannot scale, so FlipX and
// FlipY carry the gesture's mirroring on their own.
type TransformRecord struct {
	Center          geom.Vec
	Rotation        float64
	Scale           geom.Vec
	Bounds          geom.Bounds
	Handle          geom.Handle
	Clip            bool
	TransformOrigin geom.Vec
	FlipX, FlipY    bool
}

// Kind is the behavior shared by all shapes of one type.
type Kind interface {
	Type() document.ShapeType
	Capabilities() Capabilities
	// Default returns the model used when a creation tool makes a new shape.
	Default() document.Shape
	// Bounds returns the unrotated page bounds of s.
	Bounds(s document.Shape) geom.Bounds
}

// Resizer is implemented by kinds that respond to resize gestures.
type Resizer interface {
	OnResize(initial document.Shape, tr TransformRecord) document.Partial
}

// ResizeStarter is implemented by kinds that adjust themselves when a resize begins.
type ResizeStarter interface {
	OnResizeStart(s document.Shape, info ResizeStartInfo) document.Partial
}
