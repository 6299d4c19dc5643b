package machine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/inamate/whiteboard/internal/input"
)

type recorder struct {
	log []string
}

type idleState struct {
	tool *Tool
	rec  *recorder
}

func (s *idleState) ID() string { return "idle" }

func (s *idleState) OnEnter(info any) error {
	s.rec.log = append(s.rec.log, "enter idle")
	return nil
}

func (s *idleState) OnExit() error {
	s.rec.log = append(s.rec.log, "exit idle")
	return nil
}

func (s *idleState) OnPointerDown(e input.PointerEvent) error {
	return s.tool.Transition("pointing", e.Point)
}

type pointingState struct {
	rec   *recorder
	moves int
}

func (s *pointingState) ID() string { return "pointing" }

func (s *pointingState) OnEnter(info any) error {
	s.rec.log = append(s.rec.log, "enter pointing")
	return nil
}

func (s *pointingState) OnPointerMove(input.PointerEvent) error {
	s.moves++
	s.rec.log = append(s.rec.log, "move")
	return nil
}

func (s *pointingState) Cursor() input.Cursor { return input.CursorGrabbing }

func newTestTool(id string, rec *recorder) *Tool {
	return NewTool(id, "idle", input.CursorDefault).
		Add("idle", func(t *Tool) State { return &idleState{tool: t, rec: rec} }).
		Add("pointing", func(t *Tool) State { return &pointingState{rec: rec} })
}

func TestToolTransitions(t *testing.T) {
	rec := &recorder{}
	tool := newTestTool("test", rec)

	if err := tool.Enter(nil); err != nil {
		t.Fatal(err)
	}
	if err := tool.PointerDown(input.PointerEvent{}); err != nil {
		t.Fatal(err)
	}
	if err := tool.PointerMove(input.PointerEvent{}); err != nil {
		t.Fatal(err)
	}

	want := []string{"enter idle", "exit idle", "enter pointing", "move"}
	if !reflect.DeepEqual(rec.log, want) {
		t.Errorf("log = %v, want %v", rec.log, want)
	}
	if tool.CurrentID() != "pointing" {
		t.Errorf("current = %q, want pointing", tool.CurrentID())
	}
	if tool.Cursor() != input.CursorGrabbing {
		t.Errorf("cursor = %s, want grabbing", tool.Cursor())
	}
}

func TestToolStatesAreFresh(t *testing.T) {
	rec := &recorder{}
	tool := newTestTool("test", rec)
	_ = tool.Transition("pointing", nil)
	_ = tool.PointerMove(input.PointerEvent{})
	_ = tool.Transition("pointing", nil)

	if s := tool.Current().(*pointingState); s.moves != 0 {
		t.Errorf("re-entered state kept %d moves", s.moves)
	}
}

func TestToolUnknownStateChangesNothing(t *testing.T) {
	rec := &recorder{}
	tool := newTestTool("test", rec)
	_ = tool.Enter(nil)
	rec.log = nil

	err := tool.Transition("flying", nil)
	if !errors.Is(err, ErrUnknownState) {
		t.Fatalf("got %v, want ErrUnknownState", err)
	}
	if tool.CurrentID() != "idle" {
		t.Errorf("current = %q after failed transition", tool.CurrentID())
	}
	if len(rec.log) != 0 {
		t.Errorf("failed transition ran hooks: %v", rec.log)
	}
}

func TestToolIgnoresUnhandledEvents(t *testing.T) {
	tool := newTestTool("test", &recorder{})
	_ = tool.Enter(nil)
	if err := tool.KeyDown(input.KeyEvent{Key: input.KeyEscape}); err != nil {
		t.Errorf("unhandled event returned %v", err)
	}
	if err := tool.PinchEnd(input.PinchEvent{}); err != nil {
		t.Errorf("unhandled event returned %v", err)
	}
	if tool.Cursor() != input.CursorDefault {
		t.Errorf("cursor = %s, want tool default", tool.Cursor())
	}
}

func TestRegistry(t *testing.T) {
	rec := &recorder{}
	r := NewRegistry(nil)
	if err := r.Register(newTestTool("select", rec)); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(newTestTool("line", rec)); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(newTestTool("line", rec)); !errors.Is(err, ErrDuplicateTool) {
		t.Errorf("got %v, want ErrDuplicateTool", err)
	}
	if err := r.Select("eraser", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("got %v, want ErrUnknownTool", err)
	}

	if err := r.Select("select", nil); err != nil {
		t.Fatal(err)
	}
	if r.Path() != "select.idle" {
		t.Errorf("path = %q", r.Path())
	}
	_ = r.Current().PointerDown(input.PointerEvent{})

	rec.log = nil
	if err := r.Select("line", nil); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec.log, []string{"enter idle"}) {
		t.Errorf("switching tools ran %v", rec.log)
	}
	if sel, _ := r.Tool("select"); sel.Current() != nil {
		t.Error("previous tool still has an active state")
	}

	tests := []struct {
		path string
		want bool
	}{
		{"line", true},
		{"line.idle", true},
		{"line.pointing", false},
		{"select", false},
		{"select.idle", false},
	}
	for _, tt := range tests {
		if got := r.IsIn(tt.path); got != tt.want {
			t.Errorf("IsIn(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if !r.IsInAny("select.idle", "line.idle") {
		t.Error("IsInAny should match line.idle")
	}
}

func TestRegisterRejectsMissingInitial(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Register(NewTool("empty", "idle", input.CursorDefault))
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("got %v, want ErrUnknownState", err)
	}
}
