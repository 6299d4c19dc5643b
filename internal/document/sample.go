package document

import (
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/typeid"
)

// NewSampleDocument returns a small page with one shape of each kind.
func NewSampleDocument() Document {
	boxID := typeid.NewShapeID()
	ellipseID := typeid.NewShapeID()
	lineID := typeid.NewShapeID()
	textID := typeid.NewShapeID()
	imageID := typeid.NewShapeID()

	unit := geom.V(1, 1)

	return New(
		Shape{
			ID:    boxID,
			Type:  ShapeTypeBox,
			Point: geom.V(100, 100),
			Size:  geom.V(200, 120),
			Scale: unit,
			Style: Style{Fill: "#e94560", Stroke: "#000000", StrokeWidth: 2, Opacity: 1},
		},
		Shape{
			ID:       ellipseID,
			Type:     ShapeTypeEllipse,
			Point:    geom.V(400, 120),
			Size:     geom.V(140, 140),
			Rotation: 0,
			Scale:    unit,
			Style:    Style{Fill: "#0f3460", Stroke: "#000000", StrokeWidth: 2, Opacity: 1},
		},
		Shape{
			ID:      lineID,
			Type:    ShapeTypeLine,
			Point:   geom.V(100, 320),
			Size:    geom.V(300, 80),
			Scale:   unit,
			Handles: []geom.Vec{geom.V(0, 80), geom.V(300, 0)},
			Style:   Style{Stroke: "#16213e", StrokeWidth: 3, Opacity: 1},
		},
		Shape{
			ID:       textID,
			Type:     ShapeTypeText,
			Point:    geom.V(450, 320),
			Size:     geom.V(160, 32),
			Scale:    unit,
			Text:     "Hello",
			Autosize: true,
			Style:    Style{Fill: "#ffffff", Stroke: "#000000", StrokeWidth: 2, Opacity: 1},
		},
		Shape{
			ID:                  imageID,
			Type:                ShapeTypeImage,
			Point:               geom.V(650, 100),
			Size:                geom.V(160, 90),
			Scale:               unit,
			IsAspectRatioLocked: true,
			Style:               Style{Opacity: 1},
		},
	)
}
