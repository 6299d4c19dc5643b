package selecttool

import (
	"slices"

	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/tools"
)

// The pointing states wait for the pointer to leave the dead zone before
// starting a drag. Releasing inside the dead zone is a click.

type pointingCanvasState struct {
	base
}

func (s *pointingCanvasState) ID() string { return PointingCanvas }

func (s *pointingCanvasState) OnEnter(any) error {
	if !s.app.Inputs().Modifiers.Shift {
		s.app.SelectShapes()
	}
	return nil
}

func (s *pointingCanvasState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Brushing, nil)
	}
	return nil
}

func (s *pointingCanvasState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

func (s *pointingCanvasState) OnPointerUp(input.PointerEvent) error {
	if !s.app.Inputs().Modifiers.Shift {
		s.app.SelectShapes()
	}
	return s.tool.Transition(Idle, nil)
}

func (s *pointingCanvasState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

type pointingShapeState struct {
	base
}

func (s *pointingShapeState) ID() string { return PointingShape }

// OnEnter selects the pointed shape, adding it to the selection when shift is held.
func (s *pointingShapeState) OnEnter(info any) error {
	target, _ := info.(input.Target)
	if target.ShapeID == "" {
		return nil
	}
	if s.app.Inputs().Modifiers.Shift {
		s.app.SelectShapes(append(s.app.SelectedIDs(), target.ShapeID)...)
		return nil
	}
	s.app.SelectShapes(target.ShapeID)
	return nil
}

func (s *pointingShapeState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Translating, nil)
	}
	return nil
}

func (s *pointingShapeState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

func (s *pointingShapeState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *pointingShapeState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

type pointingSelectedShapeState struct {
	base
	shapeID string
}

func (s *pointingSelectedShapeState) ID() string { return PointingSelectedShape }

func (s *pointingSelectedShapeState) OnEnter(info any) error {
	target, _ := info.(input.Target)
	s.shapeID = target.ShapeID
	return nil
}

func (s *pointingSelectedShapeState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Translating, nil)
	}
	return nil
}

func (s *pointingSelectedShapeState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

// OnPointerUp narrows the selection to the clicked shape, or with shift
// removes it from the selection.
func (s *pointingSelectedShapeState) OnPointerUp(input.PointerEvent) error {
	if s.shapeID != "" {
		if s.app.Inputs().Modifiers.Shift {
			s.app.SelectShapes(slices.DeleteFunc(s.app.SelectedIDs(), func(id string) bool { return id == s.shapeID })...)
		} else {
			s.app.SelectShapes(s.shapeID)
		}
	}
	return s.tool.Transition(Idle, nil)
}

func (s *pointingSelectedShapeState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

type pointingBoundsBackgroundState struct {
	base
}

func (s *pointingBoundsBackgroundState) ID() string { return PointingBoundsBackground }

func (s *pointingBoundsBackgroundState) Cursor() input.Cursor { return input.CursorMove }

func (s *pointingBoundsBackgroundState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Translating, nil)
	}
	return nil
}

func (s *pointingBoundsBackgroundState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

func (s *pointingBoundsBackgroundState) OnPointerUp(input.PointerEvent) error {
	s.app.SelectShapes()
	return s.tool.Transition(Idle, nil)
}

func (s *pointingBoundsBackgroundState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

type pointingResizeHandleState struct {
	base
	handle geom.Handle
}

func (s *pointingResizeHandleState) ID() string { return PointingResizeHandle }

func (s *pointingResizeHandleState) Cursor() input.Cursor { return input.HandleCursor(s.handle) }

func (s *pointingResizeHandleState) OnEnter(info any) error {
	target, _ := info.(input.Target)
	s.handle = target.Handle
	return nil
}

func (s *pointingResizeHandleState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Resizing, s.handle)
	}
	return nil
}

func (s *pointingResizeHandleState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

func (s *pointingResizeHandleState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *pointingResizeHandleState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

type pointingRotateHandleState struct {
	base
}

func (s *pointingRotateHandleState) ID() string { return PointingRotateHandle }

func (s *pointingRotateHandleState) Cursor() input.Cursor { return input.CursorRotate }

func (s *pointingRotateHandleState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Rotating, nil)
	}
	return nil
}

func (s *pointingRotateHandleState) OnWheel(input.WheelEvent) error {
	return s.OnPointerMove(input.PointerEvent{})
}

func (s *pointingRotateHandleState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *pointingRotateHandleState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}
