package document

import (
	"slices"

	"github.com/inamate/whiteboard/internal/geom"
)

// ShapeType names a shape kind registered with the shape registry.
type ShapeType string

const (
	ShapeTypeBox     ShapeType = "box"
	ShapeTypeEllipse ShapeType = "ellipse"
	ShapeTypeLine    ShapeType = "line"
	ShapeTypeText    ShapeType = "text"
	ShapeTypeImage   ShapeType = "image"
)

type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Opacity     float64 `json:"opacity"`
}

// Shape is the model of one shape on the page. Point is the top-left corner of
// the unrotated shape; Rotation is in radians about the shape's center.
type Shape struct {
	ID                  string     `json:"id"`
	Type                ShapeType  `json:"type"`
	ParentID            string     `json:"parentId,omitempty"`
	Point               geom.Vec   `json:"point"`
	Size                geom.Vec   `json:"size"`
	Rotation            float64    `json:"rotation"`
	Scale               geom.Vec   `json:"scale"`
	IsAspectRatioLocked bool       `json:"isAspectRatioLocked,omitempty"`
	IsSizeLocked        bool       `json:"isSizeLocked,omitempty"`
	Handles             []geom.Vec `json:"handles,omitempty"`
	Text                string     `json:"text,omitempty"`
	Autosize            bool       `json:"autosize,omitempty"`
	Style               Style      `json:"style"`
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	s.Handles = slices.Clone(s.Handles)
	return s
}

// Partial is a partial shape model. Nil fields are left untouched by Merge.
type Partial struct {
	ParentID            *string
	Point               *geom.Vec
	Size                *geom.Vec
	Rotation            *float64
	Scale               *geom.Vec
	IsAspectRatioLocked *bool
	IsSizeLocked        *bool
	Handles             []geom.Vec
	Text                *string
	Autosize            *bool
	Style               *Style
}

// IsEmpty reports whether the partial sets no field.
func (p Partial) IsEmpty() bool {
	return p.ParentID == nil && p.Point == nil && p.Size == nil && p.Rotation == nil &&
		p.Scale == nil && p.IsAspectRatioLocked == nil && p.IsSizeLocked == nil &&
		p.Handles == nil && p.Text == nil && p.Autosize == nil && p.Style == nil
}

// Merge returns a copy of s with every field set in p applied.
func (s Shape) Merge(p Partial) Shape {
	next := s.Clone()
	if p.ParentID != nil {
		next.ParentID = *p.ParentID
	}
	if p.Point != nil {
		next.Point = *p.Point
	}
	if p.Size != nil {
		next.Size = *p.Size
	}
	if p.Rotation != nil {
		next.Rotation = *p.Rotation
	}
	if p.Scale != nil {
		next.Scale = *p.Scale
	}
	if p.IsAspectRatioLocked != nil {
		next.IsAspectRatioLocked = *p.IsAspectRatioLocked
	}
	if p.IsSizeLocked != nil {
		next.IsSizeLocked = *p.IsSizeLocked
	}
	if p.Handles != nil {
		next.Handles = slices.Clone(p.Handles)
	}
	if p.Text != nil {
		next.Text = *p.Text
	}
	if p.Autosize != nil {
		next.Autosize = *p.Autosize
	}
	if p.Style != nil {
		next.Style = *p.Style
	}
	return next
}

// PointPartial is a Partial that only moves the shape.
func PointPartial(p geom.Vec) Partial {
	return Partial{Point: &p}
}

// Ptr returns a pointer to v, for building Partial literals.
func Ptr[T any](v T) *T {
	return &v
}

// AsPartial returns a Partial that sets every field of s, for restoring a
// shape to a captured state. Nil handles stay unset.
func (s Shape) AsPartial() Partial {
	c := s.Clone()
	return Partial{
		ParentID:            &c.ParentID,
		Point:               &c.Point,
		Size:                &c.Size,
		Rotation:            &c.Rotation,
		Scale:               &c.Scale,
		IsAspectRatioLocked: &c.IsAspectRatioLocked,
		IsSizeLocked:        &c.IsSizeLocked,
		Handles:             c.Handles,
		Text:                &c.Text,
		Autosize:            &c.Autosize,
		Style:               &c.Style,
	}
}
