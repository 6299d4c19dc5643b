// Package selecttool implements the select tool: selecting, brushing,
// translating, resizing and rotating shapes, and pinch-zooming the view.
package selecttool

import (
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/machine"
	"github.com/inamate/whiteboard/internal/tools"
)

// State ids.
const (
	Idle                     = "idle"
	PointingCanvas           = "pointingCanvas"
	PointingShape            = "pointingShape"
	PointingSelectedShape    = "pointingSelectedShape"
	PointingBoundsBackground = "pointingBoundsBackground"
	PointingResizeHandle     = "pointingResizeHandle"
	PointingRotateHandle     = "pointingRotateHandle"
	Brushing                 = "brushing"
	Translating              = "translating"
	Resizing                 = "resizing"
	Rotating                 = "rotating"
	Pinching                 = "pinching"
)

type base struct {
	app  tools.App
	tool *machine.Tool
}

// New builds the select tool for app.
func New(app tools.App) *machine.Tool {
	mk := func(t *machine.Tool) base { return base{app: app, tool: t} }
	return machine.NewTool(tools.SelectID, Idle, input.CursorDefault).
		Add(Idle, func(t *machine.Tool) machine.State { return &idleState{base: mk(t)} }).
		Add(PointingCanvas, func(t *machine.Tool) machine.State { return &pointingCanvasState{base: mk(t)} }).
		Add(PointingShape, func(t *machine.Tool) machine.State { return &pointingShapeState{base: mk(t)} }).
		Add(PointingSelectedShape, func(t *machine.Tool) machine.State { return &pointingSelectedShapeState{base: mk(t)} }).
		Add(PointingBoundsBackground, func(t *machine.Tool) machine.State { return &pointingBoundsBackgroundState{base: mk(t)} }).
		Add(PointingResizeHandle, func(t *machine.Tool) machine.State { return &pointingResizeHandleState{base: mk(t)} }).
		Add(PointingRotateHandle, func(t *machine.Tool) machine.State { return &pointingRotateHandleState{base: mk(t)} }).
		Add(Brushing, func(t *machine.Tool) machine.State { return &brushingState{base: mk(t)} }).
		Add(Translating, func(t *machine.Tool) machine.State { return &translatingState{base: mk(t)} }).
		Add(Resizing, func(t *machine.Tool) machine.State { return &resizingState{base: mk(t)} }).
		Add(Rotating, func(t *machine.Tool) machine.State { return &rotatingState{base: mk(t)} }).
		Add(Pinching, func(t *machine.Tool) machine.State { return &pinchingState{base: mk(t)} })
}

type idleState struct {
	base
}

func (s *idleState) ID() string { return Idle }

func (s *idleState) OnPointerDown(e input.PointerEvent) error {
	switch e.Target.Kind {
	case input.TargetShape:
		if s.app.IsSelected(e.Target.ShapeID) {
			return s.tool.Transition(PointingSelectedShape, e.Target)
		}
		return s.tool.Transition(PointingShape, e.Target)
	case input.TargetSelection:
		return s.tool.Transition(PointingBoundsBackground, e.Target)
	case input.TargetResizeHandle:
		return s.tool.Transition(PointingResizeHandle, e.Target)
	case input.TargetRotateHandle:
		return s.tool.Transition(PointingRotateHandle, e.Target)
	default:
		return s.tool.Transition(PointingCanvas, e.Target)
	}
}

func (s *idleState) OnWheel(e input.WheelEvent) error {
	s.app.Viewport().PanCamera(e.Delta)
	return nil
}

func (s *idleState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyEscape:
		s.app.SelectShapes()
	case input.KeyDelete, input.KeyBackspace:
		ids := s.app.SelectedIDs()
		if len(ids) == 0 {
			return nil
		}
		if err := s.app.DeleteShapes(ids...); err != nil {
			return err
		}
		s.app.SelectShapes()
	case input.KeyZ, "Z":
		if !e.Ctrl && !e.Meta {
			return nil
		}
		if e.Shift {
			return s.app.Redo()
		}
		return s.app.Undo()
	}
	return nil
}

func (s *idleState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}

// pinchingState zooms about the pinch center. origin and offset are the
// center and offset of the event that started the pinch.
type pinchingState struct {
	base
	origin geom.Vec
	offset geom.Vec
}

func (s *pinchingState) ID() string { return Pinching }

func (s *pinchingState) OnEnter(info any) error {
	if e, ok := info.(input.PinchEvent); ok {
		s.origin = e.Point
		s.offset = e.Offset
	}
	return nil
}

func (s *pinchingState) OnPinch(e input.PinchEvent) error {
	s.app.Viewport().PinchCamera(e.Point, geom.Vec{}, e.Offset.X)
	return nil
}

func (s *pinchingState) OnPinchEnd(input.PinchEvent) error {
	s.app.Logger().Debug("pinch finished",
		"origin", s.origin, "from", s.offset.X, "zoom", s.app.Viewport().Camera().Zoom)
	return s.tool.Transition(Idle, nil)
}
