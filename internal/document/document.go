package document

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrShapeNotFound  = errors.New("shape not found")
	ErrDuplicateShape = errors.New("duplicate shape id")
	ErrInvalidParent  = errors.New("invalid parent")
)

// Document is an ordered mapping from shape id to shape model. Order is
// back-to-front paint order.
type Document struct {
	Order  []string         `json:"order"`
	Shapes map[string]Shape `json:"shapes"`
}

// New creates a document holding shapes in the given order.
func New(shapes ...Shape) Document {
	doc := Document{
		Order:  make([]string, 0, len(shapes)),
		Shapes: make(map[string]Shape, len(shapes)),
	}
	for _, s := range shapes {
		doc.Order = append(doc.Order, s.ID)
		doc.Shapes[s.ID] = s.Clone()
	}
	return doc
}

// Clone returns a deep copy of the document. Snapshots handed out by the
// store are clones, so callers may keep them without observing later edits.
func (d Document) Clone() Document {
	out := Document{
		Order:  slices.Clone(d.Order),
		Shapes: make(map[string]Shape, len(d.Shapes)),
	}
	if out.Order == nil {
		out.Order = []string{}
	}
	for id, s := range d.Shapes {
		out.Shapes[id] = s.Clone()
	}
	return out
}

// Get returns the shape with the given id.
func (d Document) Get(id string) (Shape, bool) {
	s, ok := d.Shapes[id]
	return s, ok
}

// List returns the shapes in paint order.
func (d Document) List() []Shape {
	out := make([]Shape, 0, len(d.Order))
	for _, id := range d.Order {
		if s, ok := d.Shapes[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Children returns the ids of shapes whose parent is id, in paint order.
func (d Document) Children(id string) []string {
	var out []string
	for _, cid := range d.Order {
		if d.Shapes[cid].ParentID == id {
			out = append(out, cid)
		}
	}
	return out
}

// Validate checks that the order and the shape map agree, and that every
// parent reference points at an existing shape without forming a cycle.
func (d Document) Validate() error {
	if len(d.Order) != len(d.Shapes) {
		return fmt.Errorf("order has %d ids but document has %d shapes", len(d.Order), len(d.Shapes))
	}
	seen := make(map[string]bool, len(d.Order))
	for _, id := range d.Order {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateShape, id)
		}
		seen[id] = true
		s, ok := d.Shapes[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
		}
		if s.ID != id {
			return fmt.Errorf("shape %s stored under id %s", s.ID, id)
		}
	}
	for _, id := range slices.Sorted(maps.Keys(d.Shapes)) {
		visited := map[string]bool{id: true}
		for p := d.Shapes[id].ParentID; p != ""; p = d.Shapes[p].ParentID {
			if _, ok := d.Shapes[p]; !ok {
				return fmt.Errorf("%w: %s references missing parent %s", ErrInvalidParent, id, p)
			}
			if visited[p] {
				return fmt.Errorf("%w: cycle through %s", ErrInvalidParent, id)
			}
			visited[p] = true
		}
	}
	return nil
}
