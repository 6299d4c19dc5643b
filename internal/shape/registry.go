package shape

import (
	"errors"
	"fmt"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
)

// ErrUnknownType is returned when a shape's type has no registered kind.
var ErrUnknownType = errors.New("unknown shape type")

// Registry maps shape types to their kinds.
type Registry struct {
	kinds map[document.ShapeType]Kind
}

// NewRegistry creates a registry holding the given kinds.
func NewRegistry(kinds ...Kind) *Registry {
	r := &Registry{kinds: make(map[document.ShapeType]Kind, len(kinds))}
	for _, k := range kinds {
		r.kinds[k.Type()] = k
	}
	return r
}

// DefaultRegistry returns a registry with every built-in kind.
func DefaultRegistry() *Registry {
	return NewRegistry(BoxKind{}, EllipseKind{}, LineKind{}, TextKind{}, ImageKind{})
}

// Kind looks up the kind for t.
func (r *Registry) Kind(t document.ShapeType) (Kind, error) {
	k, ok := r.kinds[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return k, nil
}

// Capabilities returns the kind's capabilities merged with the model's locks.
// Shapes of an unknown type can do nothing.
func (r *Registry) Capabilities(s document.Shape) Capabilities {
	k, err := r.Kind(s.Type)
	if err != nil {
		return Capabilities{}
	}
	c := k.Capabilities()
	c.IsAspectRatioLocked = s.IsAspectRatioLocked
	c.IsSizeLocked = s.IsSizeLocked
	return c
}

// Bounds returns the unrotated page bounds of s, carrying s.Rotation.
func (r *Registry) Bounds(s document.Shape) geom.Bounds {
	var b geom.Bounds
	if k, err := r.Kind(s.Type); err == nil {
		b = k.Bounds(s)
	} else {
		b = geom.NewBounds(s.Point, s.Size)
	}
	b.Rotation = s.Rotation
	return b
}

// RotatedBounds returns the axis-aligned page bounds of s after rotation.
func (r *Registry) RotatedBounds(s document.Shape) geom.Bounds {
	b := r.Bounds(s)
	if s.Rotation == 0 {
		return b
	}
	m := geom.FromTransform(geom.Vec{}, geom.V(1, 1), s.Rotation, b.Center())
	return m.ApplyBounds(b)
}

// Center returns the page center of s.
func (r *Registry) Center(s document.Shape) geom.Vec {
	return r.Bounds(s).Center()
}

// Default returns a new model of type t with the given id.
func (r *Registry) Default(t document.ShapeType, id string) (document.Shape, error) {
	k, err := r.Kind(t)
	if err != nil {
		return document.Shape{}, err
	}
	s := k.Default()
	s.ID = id
	return s, nil
}

// ResizeStart lets the kind react to the start of a resize. It returns an
// empty Partial when the kind does not care.
func (r *Registry) ResizeStart(s document.Shape, info ResizeStartInfo) document.Partial {
	k, err := r.Kind(s.Type)
	if err != nil {
		return document.Partial{}
	}
	if rs, ok := k.(ResizeStarter); ok {
		return rs.OnResizeStart(s, info)
	}
	return document.Partial{}
}

// Resize asks the kind where initial should go for tr.
func (r *Registry) Resize(initial document.Shape, tr TransformRecord) document.Partial {
	k, err := r.Kind(initial.Type)
	if err != nil {
		return document.Partial{}
	}
	if rz, ok := k.(Resizer); ok {
		return rz.OnResize(initial, tr)
	}
	return document.Partial{}
}
