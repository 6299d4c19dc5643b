package selecttool

import (
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/transform"
)

type resizingState struct {
	base
	session *transform.Resize
	cursor  input.Cursor
}

func (s *resizingState) ID() string { return Resizing }

func (s *resizingState) Cursor() input.Cursor { return s.cursor }

// OnEnter expects the dragged handle as info.
func (s *resizingState) OnEnter(info any) error {
	handle, _ := info.(geom.Handle)
	if !handle.Valid() {
		handle = geom.HandleBottomRight
	}
	if err := s.app.Pause(); err != nil {
		return err
	}
	s.cursor = input.HandleCursor(handle)
	s.session = transform.NewResize(s.app.ShapeRegistry(), s.app.SelectedShapes(), handle)
	if s.session.Empty() {
		return nil
	}
	if err := s.app.UpdateShapes(s.session.Start()); err != nil {
		return err
	}
	return s.resize()
}

func (s *resizingState) OnExit() error {
	return s.app.Resume()
}

func (s *resizingState) resize() error {
	if s.session.Empty() {
		return nil
	}
	in := s.app.Inputs()
	step := s.session.Step(in.Delta(), in.Modifiers)
	s.cursor = step.Cursor
	return s.app.UpdateShapes(step.Updates)
}

func (s *resizingState) OnPointerMove(input.PointerEvent) error {
	return s.resize()
}

func (s *resizingState) OnWheel(input.WheelEvent) error {
	return s.resize()
}

func (s *resizingState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *resizingState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyEscape:
		if !s.session.Empty() {
			if err := s.app.UpdateShapes(s.session.Revert()); err != nil {
				return err
			}
		}
		return s.tool.Transition(Idle, nil)
	case input.KeyShift, input.KeyAlt, input.KeyControl:
		return s.resize()
	}
	return nil
}

func (s *resizingState) OnKeyUp(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyShift, input.KeyAlt, input.KeyControl:
		return s.resize()
	}
	return nil
}
