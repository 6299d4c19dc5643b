package machine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/inamate/whiteboard/internal/input"
)

// Registry holds the editor's tools and tracks which one is selected.
type Registry struct {
	tools   map[string]*Tool
	order   []string
	current *Tool
	log     *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger uses slog.Default().
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{tools: make(map[string]*Tool), log: log}
}

// Register adds t. Tool ids must be unique.
func (r *Registry) Register(t *Tool) error {
	if _, ok := r.tools[t.id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.id)
	}
	if _, ok := t.factories[t.initial]; !ok {
		return fmt.Errorf("tool %s: initial %w: %s", t.id, ErrUnknownState, t.initial)
	}
	t.log = r.log
	r.tools[t.id] = t
	r.order = append(r.order, t.id)
	return nil
}

// Tool looks up a registered tool.
func (r *Registry) Tool(id string) (*Tool, bool) {
	t, ok := r.tools[id]
	return t, ok
}

// Tools returns the registered tool ids in registration order.
func (r *Registry) Tools() []string { return r.order }

// Current returns the selected tool, or nil before the first Select.
func (r *Registry) Current() *Tool { return r.current }

// Select exits the current tool's state and enters tool id at its initial
// state. Selecting the current tool sends it back to its initial state.
func (r *Registry) Select(id string, info any) error {
	next, ok := r.tools[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	if r.current != nil && r.current != next {
		if err := r.current.Exit(); err != nil {
			return err
		}
	}
	r.log.Debug("tool selected", "tool", id)
	r.current = next
	return next.Enter(info)
}

// Path returns "tool.state" for the active state.
func (r *Registry) Path() string {
	if r.current == nil {
		return ""
	}
	return r.current.id + "." + r.current.CurrentID()
}

// IsIn reports whether path names the current tool ("select") or its active
// state ("select.idle").
func (r *Registry) IsIn(path string) bool {
	if r.current == nil {
		return false
	}
	tool, state, hasState := strings.Cut(path, ".")
	if tool != r.current.id {
		return false
	}
	return !hasState || state == r.current.CurrentID()
}

// IsInAny reports whether IsIn holds for any of paths.
func (r *Registry) IsInAny(paths ...string) bool {
	for _, p := range paths {
		if r.IsIn(p) {
			return true
		}
	}
	return false
}

// Cursor returns the cursor of the current tool's active state.
func (r *Registry) Cursor() input.Cursor {
	if r.current == nil {
		return input.CursorDefault
	}
	return r.current.Cursor()
}
