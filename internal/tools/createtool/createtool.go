// Package createtool implements the tools that draw new shapes: box,
// ellipse and line are dragged out from the pointer-down point, text is
// placed with a click.
package createtool

import (
	"math"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/machine"
	"github.com/inamate/whiteboard/internal/tools"
)

// State ids.
const (
	Idle     = "idle"
	Pointing = "pointing"
	Creating = "creating"
)

// shaper computes the update that stretches a new shape between two page points.
type shaper func(origin, current geom.Vec, square bool) document.Partial

type base struct {
	app       tools.App
	tool      *machine.Tool
	shapeType document.ShapeType
	shape     shaper
	// drag is false for tools that create on pointer-down.
	drag bool
}

func newTool(app tools.App, id string, t document.ShapeType, sh shaper, drag bool) *machine.Tool {
	mk := func(tool *machine.Tool) base {
		return base{app: app, tool: tool, shapeType: t, shape: sh, drag: drag}
	}
	tool := machine.NewTool(id, Idle, input.CursorCrosshair).
		Add(Idle, func(tool *machine.Tool) machine.State { return &idleState{base: mk(tool)} }).
		Add(Creating, func(tool *machine.Tool) machine.State { return &creatingState{base: mk(tool)} })
	if drag {
		tool.Add(Pointing, func(tool *machine.Tool) machine.State { return &pointingState{base: mk(tool)} })
	}
	return tool
}

// NewBox builds the box tool.
func NewBox(app tools.App) *machine.Tool {
	return newTool(app, tools.BoxID, document.ShapeTypeBox, boxShaper, true)
}

// NewEllipse builds the ellipse tool.
func NewEllipse(app tools.App) *machine.Tool {
	return newTool(app, tools.EllipseID, document.ShapeTypeEllipse, boxShaper, true)
}

// NewLine builds the line tool.
func NewLine(app tools.App) *machine.Tool {
	return newTool(app, tools.LineID, document.ShapeTypeLine, lineShaper, true)
}

// NewText builds the text tool.
func NewText(app tools.App) *machine.Tool {
	return newTool(app, tools.TextID, document.ShapeTypeText, textShaper, false)
}

// boxShaper spans the box between the two points. Square extends the
// shorter side to match the longer one, away from the origin.
func boxShaper(origin, current geom.Vec, square bool) document.Partial {
	d := current.Sub(origin)
	if square {
		side := math.Max(math.Abs(d.X), math.Abs(d.Y))
		d = geom.V(math.Copysign(side, d.X), math.Copysign(side, d.Y))
	}
	b := geom.BoundsFromPoints(origin, origin.Add(d))
	return document.Partial{
		Point: document.Ptr(b.Min()),
		Size:  document.Ptr(geom.V(math.Max(1, b.Width), math.Max(1, b.Height))),
	}
}

// lineShaper runs the line from origin to current.
func lineShaper(origin, current geom.Vec, _ bool) document.Partial {
	p := origin.Min(current)
	b := geom.BoundsFromPoints(origin, current)
	return document.Partial{
		Point:   &p,
		Size:    document.Ptr(b.Size()),
		Handles: []geom.Vec{origin.Sub(p), current.Sub(p)},
	}
}

// textShaper places the text box at the origin.
func textShaper(origin, _ geom.Vec, _ bool) document.Partial {
	return document.PointPartial(origin)
}

type idleState struct {
	base
}

func (s *idleState) ID() string { return Idle }

func (s *idleState) OnPointerDown(input.PointerEvent) error {
	if s.drag {
		return s.tool.Transition(Pointing, nil)
	}
	return s.tool.Transition(Creating, nil)
}

func (s *idleState) OnKeyDown(e input.KeyEvent) error {
	if e.Key == input.KeyEscape {
		return s.app.SelectTool(tools.SelectID, nil)
	}
	return nil
}

func (s *idleState) OnPinchStart(input.PinchEvent) error {
	return s.app.SelectTool(tools.SelectID, nil)
}

type pointingState struct {
	base
}

func (s *pointingState) ID() string { return Pointing }

func (s *pointingState) OnPointerMove(input.PointerEvent) error {
	if tools.PastDeadZone(s.app) {
		return s.tool.Transition(Creating, nil)
	}
	return nil
}

func (s *pointingState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *pointingState) OnKeyDown(e input.KeyEvent) error {
	if e.Key == input.KeyEscape {
		return s.tool.Transition(Idle, nil)
	}
	return nil
}

// creatingState adds the new shape and sizes it until the pointer is
// released. The whole creation is one history frame; Escape removes the
// shape and leaves none.
type creatingState struct {
	base
	id string
}

func (s *creatingState) ID() string { return Creating }

func (s *creatingState) OnEnter(any) error {
	sh, err := s.app.ShapeRegistry().Default(s.shapeType, s.app.NewShapeID())
	if err != nil {
		return err
	}
	if err := s.app.Pause(); err != nil {
		return err
	}
	sh.Point = s.app.Inputs().OriginPoint
	if err := s.app.AddShapes(sh); err != nil {
		return err
	}
	s.id = sh.ID
	s.app.SelectShapes(sh.ID)
	return s.update()
}

func (s *creatingState) OnExit() error {
	return s.app.Resume()
}

func (s *creatingState) update() error {
	in := s.app.Inputs()
	p := s.shape(in.OriginPoint, in.CurrentPoint, in.Modifiers.Shift)
	return s.app.UpdateShapes(map[string]document.Partial{s.id: p})
}

func (s *creatingState) OnPointerMove(input.PointerEvent) error {
	if !s.drag {
		return nil
	}
	return s.update()
}

func (s *creatingState) OnPointerUp(input.PointerEvent) error {
	if s.drag {
		if err := s.update(); err != nil {
			return err
		}
	}
	return s.app.SelectTool(tools.SelectID, nil)
}

func (s *creatingState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyEscape:
		if err := s.app.DeleteShapes(s.id); err != nil {
			return err
		}
		s.app.SelectShapes()
		return s.tool.Transition(Idle, nil)
	case input.KeyShift:
		if s.drag {
			return s.update()
		}
	}
	return nil
}

func (s *creatingState) OnKeyUp(e input.KeyEvent) error {
	if e.Key == input.KeyShift && s.drag {
		return s.update()
	}
	return nil
}
