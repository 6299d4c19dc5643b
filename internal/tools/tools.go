// Package tools holds what tool states share: the App they drive and a few
// gesture helpers.
package tools

import (
	"log/slog"

	"github.com/inamate/whiteboard/internal/config"
	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/input"
	"github.com/inamate/whiteboard/internal/shape"
	"github.com/inamate/whiteboard/internal/viewport"
)

// Tool ids.
const (
	SelectID  = "select"
	BoxID     = "box"
	EllipseID = "ellipse"
	LineID    = "line"
	TextID    = "text"
)

// App is the editor as seen by a tool state. States read the gesture from
// Inputs and change the document only through these methods.
type App interface {
	Config() *config.Config
	Logger() *slog.Logger
	Inputs() *input.Tracker
	Viewport() *viewport.Viewport
	ShapeRegistry() *shape.Registry

	Shape(id string) (document.Shape, bool)
	Shapes() []document.Shape
	UpdateShapes(updates map[string]document.Partial) error
	AddShapes(shapes ...document.Shape) error
	DeleteShapes(ids ...string) error
	NewShapeID() string

	SelectedIDs() []string
	SelectedShapes() []document.Shape
	IsSelected(id string) bool
	SelectShapes(ids ...string)

	SetBrush(b *geom.Bounds)

	Pause() error
	Resume() error
	Undo() error
	Redo() error

	SelectTool(id string, info any) error
}

// PastDeadZone reports whether the pointer has left the dead zone around
// the gesture origin.
func PastDeadZone(app App) bool {
	in := app.Inputs()
	return in.CurrentPoint.Dist(in.OriginPoint) > app.Config().DeadZone
}
