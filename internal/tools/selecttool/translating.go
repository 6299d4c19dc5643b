package selecttool

import (
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/transform"
)

// translatingState drags the selection. Holding alt drags copies instead,
// and alt can be pressed and released mid-drag to switch back and forth.
type translatingState struct {
	base
	originals   *transform.Translate
	clones      *transform.Translate
	cloneModels []document.Shape
	cloning     bool
}

func (s *translatingState) ID() string { return Translating }

func (s *translatingState) Cursor() input.Cursor { return input.CursorMove }

func (s *translatingState) OnEnter(any) error {
	if err := s.app.Pause(); err != nil {
		return err
	}
	s.originals = transform.NewTranslate(s.app.SelectedShapes())
	if s.app.Inputs().Modifiers.Alt {
		return s.startCloning()
	}
	return s.move()
}

func (s *translatingState) OnExit() error {
	return s.app.Resume()
}

func (s *translatingState) active() *transform.Translate {
	if s.cloning {
		return s.clones
	}
	return s.originals
}

func (s *translatingState) move() error {
	t := s.active()
	if t.Empty() {
		return nil
	}
	in := s.app.Inputs()
	delta := transform.TranslateDelta(in.OriginPoint, in.CurrentPoint, in.Modifiers.Shift)
	return s.app.UpdateShapes(t.Step(delta))
}

// startCloning puts the originals back, drops copies of them at their start
// points and carries on dragging the copies.
func (s *translatingState) startCloning() error {
	if s.cloning || s.originals.Empty() {
		return nil
	}
	if err := s.app.UpdateShapes(s.originals.Revert()); err != nil {
		return err
	}
	if s.cloneModels == nil {
		for _, id := range s.originals.IDs() {
			sh, ok := s.app.Shape(id)
			if !ok {
				continue
			}
			c := sh.Clone()
			c.ID = s.app.NewShapeID()
			s.cloneModels = append(s.cloneModels, c)
		}
	}

	clones := make([]document.Shape, len(s.cloneModels))
	ids := make([]string, len(s.cloneModels))
	for i, c := range s.cloneModels {
		clones[i] = c.Clone()
		ids[i] = c.ID
	}
	if err := s.app.AddShapes(clones...); err != nil {
		return err
	}
	s.clones = transform.NewTranslate(clones)
	s.app.SelectShapes(ids...)
	s.cloning = true
	return s.move()
}

// stopCloning removes the copies and goes back to dragging the originals.
func (s *translatingState) stopCloning() error {
	if !s.cloning {
		return nil
	}
	if err := s.app.DeleteShapes(s.clones.IDs()...); err != nil {
		return err
	}
	s.cloning = false
	s.app.SelectShapes(s.originals.IDs()...)
	return s.move()
}

func (s *translatingState) OnPointerMove(input.PointerEvent) error {
	return s.move()
}

func (s *translatingState) OnWheel(input.WheelEvent) error {
	return s.move()
}

func (s *translatingState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *translatingState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyAlt:
		return s.startCloning()
	case input.KeyShift:
		return s.move()
	case input.KeyEscape:
		if s.cloning {
			if err := s.app.DeleteShapes(s.clones.IDs()...); err != nil {
				return err
			}
			s.cloning = false
			s.app.SelectShapes(s.originals.IDs()...)
		}
		if !s.originals.Empty() {
			if err := s.app.UpdateShapes(s.originals.Revert()); err != nil {
				return err
			}
		}
		return s.tool.Transition(Idle, nil)
	}
	return nil
}

func (s *translatingState) OnKeyUp(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyAlt:
		return s.stopCloning()
	case input.KeyShift:
		return s.move()
	}
	return nil
}
