package selecttool

import (
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
)

type brushTarget struct {
	id     string
	bounds geom.Bounds
}

// brushingState selects the top-level shapes touched by a rubber-band box.
// Holding ctrl only selects shapes entirely inside it; holding shift adds to
// the selection the gesture started with.
type brushingState struct {
	base
	initialSelection []string
	targets          []brushTarget
}

func (s *brushingState) ID() string { return Brushing }

func (s *brushingState) Cursor() input.Cursor { return input.CursorCrosshair }

func (s *brushingState) OnEnter(any) error {
	s.initialSelection = s.app.SelectedIDs()
	reg := s.app.ShapeRegistry()
	for _, sh := range s.app.Shapes() {
		if sh.ParentID != "" {
			continue
		}
		s.targets = append(s.targets, brushTarget{id: sh.ID, bounds: reg.RotatedBounds(sh)})
	}
	s.update()
	return nil
}

func (s *brushingState) OnExit() error {
	s.app.SetBrush(nil)
	return nil
}

func (s *brushingState) update() {
	in := s.app.Inputs()
	brush := geom.BoundsFromPoints(in.OriginPoint, in.CurrentPoint)
	s.app.SetBrush(&brush)

	var ids []string
	seen := make(map[string]bool)
	if in.Modifiers.Shift {
		for _, id := range s.initialSelection {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	for _, t := range s.targets {
		if seen[t.id] {
			continue
		}
		hit := brush.Collides(t.bounds)
		if in.Modifiers.Ctrl {
			hit = brush.ContainsBounds(t.bounds)
		}
		if hit {
			ids = append(ids, t.id)
			seen[t.id] = true
		}
	}
	s.app.SelectShapes(ids...)
}

func (s *brushingState) OnPointerMove(input.PointerEvent) error {
	s.update()
	return nil
}

func (s *brushingState) OnWheel(input.WheelEvent) error {
	s.update()
	return nil
}

func (s *brushingState) OnKeyDown(e input.KeyEvent) error {
	switch e.Key {
	case input.KeyEscape:
		s.app.SelectShapes(s.initialSelection...)
		return s.tool.Transition(Idle, nil)
	case input.KeyShift, input.KeyControl:
		s.update()
	}
	return nil
}

func (s *brushingState) OnKeyUp(e input.KeyEvent) error {
	if e.Key == input.KeyShift || e.Key == input.KeyControl {
		s.update()
	}
	return nil
}

func (s *brushingState) OnPointerUp(input.PointerEvent) error {
	return s.tool.Transition(Idle, nil)
}

func (s *brushingState) OnPinchStart(e input.PinchEvent) error {
	return s.tool.Transition(Pinching, e)
}
