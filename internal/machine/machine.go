// Package machine runs the per-tool gesture state machines.
//
// A Tool owns a fixed set of named states and exactly one active state. States
// are built fresh by their factory every time they are entered, so anything a
// state remembers about a gesture is dropped when it exits. A state handles an
// event by implementing the matching handler interface; events it does not
// handle are ignored.
package machine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/inamate/whiteboard/internal/input"
)

var (
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownTool   = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("tool already registered")
)

// State is a node in a tool's state tree. It may implement any of the
// handler interfaces below.
type State interface {
	ID() string
}

type (
	Enterer interface {
		OnEnter(info any) error
	}
	Exiter interface {
		OnExit() error
	}
	PointerDowner interface {
		OnPointerDown(e input.PointerEvent) error
	}
	PointerMover interface {
		OnPointerMove(e input.PointerEvent) error
	}
	PointerUpper interface {
		OnPointerUp(e input.PointerEvent) error
	}
	Wheeler interface {
		OnWheel(e input.WheelEvent) error
	}
	KeyDowner interface {
		OnKeyDown(e input.KeyEvent) error
	}
	KeyUpper interface {
		OnKeyUp(e input.KeyEvent) error
	}
	PinchStarter interface {
		OnPinchStart(e input.PinchEvent) error
	}
	Pincher interface {
		OnPinch(e input.PinchEvent) error
	}
	PinchEnder interface {
		OnPinchEnd(e input.PinchEvent) error
	}
	// Cursorer overrides the tool's cursor while the state is active.
	Cursorer interface {
		Cursor() input.Cursor
	}
)

// Factory builds a state for t.
type Factory func(t *Tool) State

// Tool is one tool's state tree.
type Tool struct {
	id        string
	initial   string
	cursor    input.Cursor
	factories map[string]Factory
	order     []string
	current   State
	log       *slog.Logger
}

// NewTool creates a tool whose initial state is initial. States are added
// with Add before the tool is registered.
func NewTool(id, initial string, cursor input.Cursor) *Tool {
	return &Tool{
		id:        id,
		initial:   initial,
		cursor:    cursor,
		factories: make(map[string]Factory),
		log:       slog.Default(),
	}
}

// Add declares a state.
func (t *Tool) Add(id string, f Factory) *Tool {
	if _, ok := t.factories[id]; !ok {
		t.order = append(t.order, id)
	}
	t.factories[id] = f
	return t
}

func (t *Tool) ID() string { return t.id }

// Initial returns the id of the state the tool starts in.
func (t *Tool) Initial() string { return t.initial }

// States returns the declared state ids in declaration order.
func (t *Tool) States() []string { return t.order }

// Current returns the active state, or nil before the tool is entered.
func (t *Tool) Current() State { return t.current }

// CurrentID returns the active state's id, or "" before the tool is entered.
func (t *Tool) CurrentID() string {
	if t.current == nil {
		return ""
	}
	return t.current.ID()
}

// Cursor returns the active state's cursor, falling back to the tool's.
func (t *Tool) Cursor() input.Cursor {
	if c, ok := t.current.(Cursorer); ok {
		return c.Cursor()
	}
	return t.cursor
}

// Transition exits the active state and enters a fresh instance of state id
// with info. An undeclared id fails before anything changes.
func (t *Tool) Transition(id string, info any) error {
	f, ok := t.factories[id]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownState, t.id, id)
	}
	from := t.CurrentID()
	if err := t.exitCurrent(); err != nil {
		return err
	}
	next := f(t)
	t.current = next
	t.log.Debug("state transition", "tool", t.id, "from", from, "to", id)
	if e, ok := next.(Enterer); ok {
		if err := e.OnEnter(info); err != nil {
			return fmt.Errorf("enter %s.%s: %w", t.id, id, err)
		}
	}
	return nil
}

// Enter enters the initial state.
func (t *Tool) Enter(info any) error {
	return t.Transition(t.initial, info)
}

// Exit exits the active state, leaving the tool without one.
func (t *Tool) Exit() error {
	return t.exitCurrent()
}

func (t *Tool) exitCurrent() error {
	cur := t.current
	if cur == nil {
		return nil
	}
	if x, ok := cur.(Exiter); ok {
		if err := x.OnExit(); err != nil {
			return fmt.Errorf("exit %s.%s: %w", t.id, cur.ID(), err)
		}
	}
	if t.current == cur {
		t.current = nil
	}
	return nil
}

func (t *Tool) PointerDown(e input.PointerEvent) error {
	if h, ok := t.current.(PointerDowner); ok {
		return h.OnPointerDown(e)
	}
	return nil
}

func (t *Tool) PointerMove(e input.PointerEvent) error {
	if h, ok := t.current.(PointerMover); ok {
		return h.OnPointerMove(e)
	}
	return nil
}

func (t *Tool) PointerUp(e input.PointerEvent) error {
	if h, ok := t.current.(PointerUpper); ok {
		return h.OnPointerUp(e)
	}
	return nil
}

func (t *Tool) Wheel(e input.WheelEvent) error {
	if h, ok := t.current.(Wheeler); ok {
		return h.OnWheel(e)
	}
	return nil
}

func (t *Tool) KeyDown(e input.KeyEvent) error {
	if h, ok := t.current.(KeyDowner); ok {
		return h.OnKeyDown(e)
	}
	return nil
}

func (t *Tool) KeyUp(e input.KeyEvent) error {
	if h, ok := t.current.(KeyUpper); ok {
		return h.OnKeyUp(e)
	}
	return nil
}

func (t *Tool) PinchStart(e input.PinchEvent) error {
	if h, ok := t.current.(PinchStarter); ok {
		return h.OnPinchStart(e)
	}
	return nil
}

func (t *Tool) Pinch(e input.PinchEvent) error {
	if h, ok := t.current.(Pincher); ok {
		return h.OnPinch(e)
	}
	return nil
}

func (t *Tool) PinchEnd(e input.PinchEvent) error {
	if h, ok := t.current.(PinchEnder); ok {
		return h.OnPinchEnd(e)
	}
	return nil
}
