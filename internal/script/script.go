// Package script replays recorded gestures against an editor. A script is a
// YAML list of input events and editor commands.
package script

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inamate/whiteboard/internal/editor"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
)

// Event types.
const (
	PointerDown = "pointer_down"
	PointerMove = "pointer_move"
	PointerUp   = "pointer_up"
	Wheel       = "wheel"
	KeyDown     = "key_down"
	KeyUp       = "key_up"
	PinchStart  = "pinch_start"
	Pinch       = "pinch"
	PinchEnd    = "pinch_end"
	SelectTool  = "select_tool"
	Select      = "select"
	Undo        = "undo"
	Redo        = "redo"
)

var known = map[string]bool{
	PointerDown: true, PointerMove: true, PointerUp: true, Wheel: true,
	KeyDown: true, KeyUp: true, PinchStart: true, Pinch: true, PinchEnd: true,
	SelectTool: true, Select: true, Undo: true, Redo: true,
}

// Point is written as [x, y].
type Point [2]float64

func (p Point) Vec() geom.Vec { return geom.V(p[0], p[1]) }

type Target struct {
	Kind   string `yaml:"kind"`
	Shape  string `yaml:"shape"`
	Handle string `yaml:"handle"`
}

type Modifiers struct {
	Shift bool `yaml:"shift"`
	Alt   bool `yaml:"alt"`
	Ctrl  bool `yaml:"ctrl"`
	Meta  bool `yaml:"meta"`
}

type Event struct {
	Type      string    `yaml:"type"`
	Point     Point     `yaml:"point"`
	Delta     Point     `yaml:"delta"`
	Offset    Point     `yaml:"offset"`
	Key       string    `yaml:"key"`
	Target    *Target   `yaml:"target"`
	Modifiers Modifiers `yaml:"modifiers"`
	Tool      string    `yaml:"tool"`
	Shapes    []string  `yaml:"shapes"`
}

type Script struct {
	Events []Event `yaml:"events"`
}

// Decode reads a script and checks every event type.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, e := range s.Events {
		if !known[e.Type] {
			return nil, fmt.Errorf("event %d: unknown type %q", i, e.Type)
		}
	}
	return &s, nil
}

// LoadFile reads a script from path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Run feeds every event to ed in order, stopping at the first error.
func Run(ed *editor.Editor, s *Script) error {
	for i, e := range s.Events {
		if err := apply(ed, e); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Type, err)
		}
		ed.Logger().Debug("script event", "index", i, "type", e.Type, "path", ed.Path())
	}
	return nil
}

func apply(ed *editor.Editor, e Event) error {
	mods := input.Modifiers{Shift: e.Modifiers.Shift, Alt: e.Modifiers.Alt, Ctrl: e.Modifiers.Ctrl, Meta: e.Modifiers.Meta}
	pointer := input.PointerEvent{Point: e.Point.Vec(), Modifiers: mods}
	if e.Target != nil {
		pointer.Target = input.Target{
			Kind:    input.TargetKind(e.Target.Kind),
			ShapeID: e.Target.Shape,
			Handle:  geom.Handle(e.Target.Handle),
		}
	}
	pinch := input.PinchEvent{Point: e.Point.Vec(), Delta: e.Delta.Vec(), Offset: e.Offset.Vec(), Modifiers: mods}

	switch e.Type {
	case PointerDown:
		return ed.PointerDown(pointer)
	case PointerMove:
		return ed.PointerMove(pointer)
	case PointerUp:
		return ed.PointerUp(pointer)
	case Wheel:
		return ed.Wheel(input.WheelEvent{Point: e.Point.Vec(), Delta: e.Delta.Vec(), Modifiers: mods})
	case KeyDown:
		return ed.KeyDown(input.KeyEvent{Key: e.Key, Modifiers: mods})
	case KeyUp:
		return ed.KeyUp(input.KeyEvent{Key: e.Key, Modifiers: mods})
	case PinchStart:
		return ed.PinchStart(pinch)
	case Pinch:
		return ed.Pinch(pinch)
	case PinchEnd:
		return ed.PinchEnd(pinch)
	case SelectTool:
		return ed.SelectTool(e.Tool, nil)
	case Select:
		ed.SelectShapes(e.Shapes...)
		return nil
	case Undo:
		return ed.Undo()
	case Redo:
		return ed.Redo()
	}
	return fmt.Errorf("unknown type %q", e.Type)
}
