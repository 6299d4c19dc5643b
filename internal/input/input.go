// Package input holds the normalized input events the editor dispatches to
// tool states, and the tracker that remembers where a gesture began.
package input

import "github.com/inamate/whiteboard/internal/geom"

// Keys the built-in tools react to.
const (
	KeyEscape    = "Escape"
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
	KeyAlt       = "Alt"
	KeyShift     = "Shift"
	KeyControl   = "Control"
	KeyMeta      = "Meta"
	KeyZ         = "z"
)

type Modifiers struct {
	Shift bool `json:"shift,omitempty"`
	Alt   bool `json:"alt,omitempty"`
	Ctrl  bool `json:"ctrl,omitempty"`
	Meta  bool `json:"meta,omitempty"`
}

// TargetKind says what a pointer-down landed on.
type TargetKind string

const (
	TargetCanvas       TargetKind = "canvas"
	TargetShape        TargetKind = "shape"
	TargetSelection    TargetKind = "selection"
	TargetResizeHandle TargetKind = "resize_handle"
	TargetRotateHandle TargetKind = "rotate_handle"
)

type Target struct {
	Kind    TargetKind  `json:"kind"`
	ShapeID string      `json:"shape,omitempty"`
	Handle  geom.Handle `json:"handle,omitempty"`
}

// PointerEvent is a pointer down, move or up. Point is in screen space when
// it enters the editor and in page space by the time a state sees it.
type PointerEvent struct {
	Target Target   `json:"target"`
	Point  geom.Vec `json:"point"`
	Modifiers
}

type WheelEvent struct {
	Point geom.Vec `json:"point"`
	Delta geom.Vec `json:"delta"`
	Modifiers
}

type KeyEvent struct {
	Key string `json:"key"`
	Modifiers
}

// PinchEvent carries the pinch center, the movement of the center since the
// last event, and Offset, whose X component is the target zoom. Unlike
// pointer events, its points stay in screen space.
type PinchEvent struct {
	Point  geom.Vec `json:"point"`
	Delta  geom.Vec `json:"delta"`
	Offset geom.Vec `json:"offset"`
	Modifiers
}

// Cursor is the pointer cursor a state asks the host to show.
type Cursor string

const (
	CursorDefault    Cursor = "default"
	CursorPointer    Cursor = "pointer"
	CursorCrosshair  Cursor = "crosshair"
	CursorMove       Cursor = "move"
	CursorGrab       Cursor = "grab"
	CursorGrabbing   Cursor = "grabbing"
	CursorText       Cursor = "text"
	CursorNwseResize Cursor = "nwse-resize"
	CursorNeswResize Cursor = "nesw-resize"
	CursorEwResize   Cursor = "ew-resize"
	CursorNsResize   Cursor = "ns-resize"
	CursorRotate     Cursor = "rotate"
)

// HandleCursor is the unflipped cursor for a resize handle.
func HandleCursor(h geom.Handle) Cursor {
	switch h {
	case geom.HandleTopLeft, geom.HandleBottomRight:
		return CursorNwseResize
	case geom.HandleTopRight, geom.HandleBottomLeft:
		return CursorNeswResize
	case geom.HandleLeft, geom.HandleRight:
		return CursorEwResize
	case geom.HandleTop, geom.HandleBottom:
		return CursorNsResize
	}
	return CursorDefault
}
