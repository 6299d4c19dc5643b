package selecttool

import (
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/transform"
)

// rotatingState spins the selection about its center. Shift snaps the
// angle to the configured step.
type rotatingState struct {
	base
	session *transform.Rotate
}

func (s *rotatingState) ID() string { return Rotating }

func (s *rotatingState) Cursor() input.Cursor { return input.CursorRotate }

func (s *rotatingState) OnEnter(any) error {
	if err := s.app.Pause(); err != nil {
		return err
	}
	in := s.app.Inputs()
	s.session = transform.NewRotate(s.app.ShapeRegistry(), s.app.SelectedShapes(), in.OriginPoint)
	return s.rotate()
}

func (s *rotatingState) OnExit() error {
	return s.app.Resume()
}

func (s *rotatingState) rotate() error {
	if s.session.Empty() {
		return nil
	}
	in := s.app.Inputs()
	var snap float64
	if in.Modifiers.Shift {
		snap = s.app.Config().RotateSnap()
	}
	return s.app.UpdateShapes(s.session.Step(in.CurrentPoint, snap))
}

func (s *rotatingState) OnPointerMove(input.PointerEvent) error {
	return s.rotate()
}

func (s *rotatingState) OnWheel(input.WheelEvent) error {
	return s.rotate()
}

func (s *rotatingState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *rotatingState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyEscape:
		if !s.session.Empty() {
			if err := s.app.UpdateShapes(s.session.Revert()); err != nil {
				return err
			}
		}
		return s.tool.Transition(Idle, nil)
	case input.KeyShift:
		return s.rotate()
	}
	return nil
}

func (s *rotatingState) OnKeyUp(e input.KeyEvent) error {
	if e.Key == input.KeyShift {
		return s.rotate()
	}
	return nil
}
