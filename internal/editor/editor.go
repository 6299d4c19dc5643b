// Package editor ties the document store, the history manager, the viewport
// and the tool registry into one editing session. Hosts feed it raw input
// events and read back the document, the selection and the active state.
package editor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/inamate/whiteboard/internal/config"
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/history"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/machine"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/tools"
	"github.com/inamate/whiteboard/internal/tools/createtool"
	"github.com/inamate/whiteboard/internal/tools/selecttool"
	"github.com/inamate/whiteboard/internal/typeid"
	"github.com/inamate/whiteboard/internal/viewport"
)

// Editor is one editing session. It is not safe for concurrent use; hosts
// deliver events from a single loop.
type Editor struct {
	cfg       *config.Config
	log       *slog.Logger
	sessionID string

	store    *document.Store
	history  *history.Manager
	shapes   *shape.Registry
	viewport *viewport.Viewport
	tools    *machine.Registry
	inputs   input.Tracker

	// Selection state (editor owns this, history does not record it)
	selection []string
	brush     *geom.Bounds
}

type options struct {
	log    *slog.Logger
	shapes *shape.Registry
}

type Option func(*options)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

// WithShapes replaces the default shape kind registry.
func WithShapes(r *shape.Registry) Option { return func(o *options) { o.shapes = r } }

// New starts a session on doc. A nil cfg uses config.Default().
func New(cfg *config.Config, doc document.Document, opts ...Option) (*Editor, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	o := options{log: slog.Default(), shapes: shape.DefaultRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := document.NewStore(doc)
	if err != nil {
		return nil, err
	}

	sessionID := typeid.NewSessionID()
	log := o.log.With("session", sessionID)

	e := &Editor{
		cfg:       cfg,
		log:       log,
		sessionID: sessionID,
		store:     store,
		history:   history.New(store, log),
		shapes:    o.shapes,
		viewport:  viewport.New(cfg.MinZoom, cfg.MaxZoom),
		tools:     machine.NewRegistry(log),
	}
	if cfg.HistoryEnabled {
		if err := e.history.Start(); err != nil {
			return nil, err
		}
	}

	for _, t := range []*machine.Tool{
		selecttool.New(e),
		createtool.NewBox(e),
		createtool.NewEllipse(e),
		createtool.NewLine(e),
		createtool.NewText(e),
	} {
		if err := e.tools.Register(t); err != nil {
			return nil, fmt.Errorf("register tool: %w", err)
		}
	}
	if err := e.tools.Select(tools.SelectID, nil); err != nil {
		return nil, err
	}

	log.Info("editor started", "shapes", store.Len(), "history", cfg.HistoryEnabled)
	return e, nil
}

func (e *Editor) SessionID() string { return e.sessionID }

// --- Input ---

// PointerDown starts a gesture. The point is in screen space. A pointer-down
// without a target is hit-tested against the page.
func (e *Editor) PointerDown(ev input.PointerEvent) error {
	ev.Point = e.viewport.ScreenToPage(ev.Point)
	e.inputs.PointerDown(ev.Point, ev.Modifiers)
	if ev.Target.Kind == "" {
		ev.Target = e.HitTest(ev.Point)
	}
	return e.tools.Current().PointerDown(ev)
}

func (e *Editor) PointerMove(ev input.PointerEvent) error {
	ev.Point = e.viewport.ScreenToPage(ev.Point)
	e.inputs.PointerMove(ev.Point, ev.Modifiers)
	return e.tools.Current().PointerMove(ev)
}

func (e *Editor) PointerUp(ev input.PointerEvent) error {
	ev.Point = e.viewport.ScreenToPage(ev.Point)
	e.inputs.PointerUp(ev.Point, ev.Modifiers)
	return e.tools.Current().PointerUp(ev)
}

// Wheel dispatches a wheel event. The point is in screen space. Idle states
// pan the camera; a gesture in progress treats the wheel as a pointer move.
func (e *Editor) Wheel(ev input.WheelEvent) error {
	ev.Point = e.viewport.ScreenToPage(ev.Point)
	if e.inputs.IsPointerDown {
		e.inputs.PointerMove(ev.Point, ev.Modifiers)
	}
	return e.tools.Current().Wheel(ev)
}

// KeyDown dispatches a key press. A modifier key updates the tracked
// modifiers before any state sees it.
func (e *Editor) KeyDown(ev input.KeyEvent) error {
	e.inputs.Key(ev, true)
	ev.Modifiers = e.inputs.Modifiers
	return e.tools.Current().KeyDown(ev)
}

func (e *Editor) KeyUp(ev input.KeyEvent) error {
	e.inputs.Key(ev, false)
	ev.Modifiers = e.inputs.Modifiers
	return e.tools.Current().KeyUp(ev)
}

// PinchStart begins a pinch. Pinch points stay in screen space.
func (e *Editor) PinchStart(ev input.PinchEvent) error {
	e.inputs.PinchStart(ev.Point)
	return e.tools.Current().PinchStart(ev)
}

func (e *Editor) Pinch(ev input.PinchEvent) error {
	return e.tools.Current().Pinch(ev)
}

func (e *Editor) PinchEnd(ev input.PinchEvent) error {
	e.inputs.PinchEnd()
	return e.tools.Current().PinchEnd(ev)
}

// --- Commands ---

// SelectTool switches to tool id. info is passed to its initial state.
func (e *Editor) SelectTool(id string, info any) error {
	return e.tools.Select(id, info)
}

// SelectShapes replaces the selection. Duplicate ids are dropped.
func (e *Editor) SelectShapes(ids ...string) {
	sel := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(sel, id) {
			sel = append(sel, id)
		}
	}
	e.selection = sel
}

func (e *Editor) Undo() error { return e.history.Undo() }

func (e *Editor) Redo() error { return e.history.Redo() }

// Pause holds history recording for the length of a gesture. It is a no-op
// when history is disabled.
func (e *Editor) Pause() error {
	if e.history.State() == history.StateStopped {
		return nil
	}
	return e.history.Pause()
}

func (e *Editor) Resume() error {
	if e.history.State() == history.StateStopped {
		return nil
	}
	return e.history.Resume()
}

// Restore drops changes made since the last recorded frame.
func (e *Editor) Restore() error { return e.history.Restore() }

// Load replaces the document and starts a fresh history. The active tool
// goes back to its initial state.
func (e *Editor) Load(doc document.Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	e.history.Stop()
	if err := e.store.Load(doc); err != nil {
		return err
	}
	if e.cfg.HistoryEnabled {
		if err := e.history.Start(); err != nil {
			return err
		}
	}
	e.selection = nil
	e.brush = nil
	e.inputs.Reset()
	return e.tools.Select(e.tools.Current().ID(), nil)
}

// --- tools.App ---

func (e *Editor) Config() *config.Config { return e.cfg }
func (e *Editor) Logger() *slog.Logger { return e.log }
func (e *Editor) Inputs() *input.Tracker { return &e.inputs }
func (e *Editor) Viewport() *viewport.Viewport { return e.viewport }
func (e *Editor) ShapeRegistry() *shape.Registry { return e.shapes }
func (e *Editor) NewShapeID() string { return typeid.NewShapeID() }
func (e *Editor) SetBrush(b *geom.Bounds) { e.brush = b }
func (e *Editor) Shape(id string) (document.Shape, bool) { return e.store.Shape(id) }
func (e *Editor) Shapes() []document.Shape { return e.store.Shapes() }

// UpdateShapes applies every update as one store mutation.
func (e *Editor) UpdateShapes(updates map[string]document.Partial) error {
	return e.store.UpdateMany(updates)
}

func (e *Editor) AddShapes(shapes ...document.Shape) error {
	return e.store.AddShapes(shapes...)
}

func (e *Editor) DeleteShapes(ids ...string) error {
	return e.store.DeleteShapes(ids...)
}

// SelectedIDs returns the selected ids that still name a shape.
func (e *Editor) SelectedIDs() []string {
	ids := make([]string, 0, len(e.selection))
	for _, id := range e.selection {
		if _, ok := e.store.Shape(id); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (e *Editor) SelectedShapes() []document.Shape {
	var out []document.Shape
	for _, id := range e.selection {
		if sh, ok := e.store.Shape(id); ok {
			out = append(out, sh)
		}
	}
	return out
}

func (e *Editor) IsSelected(id string) bool {
	return slices.Contains(e.selection, id)
}

// --- Queries ---

// Document returns a snapshot of the document.
func (e *Editor) Document() document.Document { return e.store.Snapshot() }

func (e *Editor) History() *history.Manager { return e.history }

// Subscribe registers fn for every document change, including undo and redo.
func (e *Editor) Subscribe(fn document.Listener) (cancel func()) {
	return e.store.Subscribe(fn)
}

// Path returns "tool.state" for the active state.
func (e *Editor) Path() string { return e.tools.Path() }

// IsIn reports whether the active path is path or lies below it.
func (e *Editor) IsIn(path string) bool { return e.tools.IsIn(path) }

func (e *Editor) IsInAny(paths ...string) bool { return e.tools.IsInAny(paths...) }

func (e *Editor) Cursor() input.Cursor { return e.tools.Cursor() }

func (e *Editor) Camera() viewport.Camera { return e.viewport.Camera() }

// Brush returns the rubber-band box while brushing.
func (e *Editor) Brush() (geom.Bounds, bool) {
	if e.brush == nil {
		return geom.Bounds{}, false
	}
	return *e.brush, true
}

// SelectionBounds returns the box drawn around the selection. A single shape
// keeps its rotation; several shapes get the axis-aligned union of their
// rotated bounds.
func (e *Editor) SelectionBounds() (geom.Bounds, bool) {
	shapes := e.SelectedShapes()
	switch len(shapes) {
	case 0:
		return geom.Bounds{}, false
	case 1:
		return e.shapes.Bounds(shapes[0]), true
	}
	bs := make([]geom.Bounds, len(shapes))
	for i, sh := range shapes {
		bs[i] = e.shapes.RotatedBounds(sh)
	}
	return geom.CommonBounds(bs...), true
}
