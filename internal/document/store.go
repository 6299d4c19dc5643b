package document

import (
	"fmt"
	"slices"
)

// Listener receives the document snapshot produced by a committed mutation.
type Listener func(snapshot Document)

// Store owns the live document. It is the only way shapes are mutated: every
// successful mutation notifies subscribers exactly once, synchronously, with
// a snapshot of the new state. A failed mutation changes nothing and notifies
// nobody.
//
// Store is not safe for concurrent use; the editor drives it from a single
// event loop.
type Store struct {
	doc       Document
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store holding a copy of doc.
func NewStore(doc Document) (*Store, error) {
	if doc.Shapes == nil {
		doc = New()
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return &Store{
		doc:       doc.Clone(),
		listeners: make(map[int]Listener),
	}, nil
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() Document {
	return s.doc.Clone()
}

// Shape returns the shape with the given id.
func (s *Store) Shape(id string) (Shape, bool) {
	sh, ok := s.doc.Shapes[id]
	if !ok {
		return Shape{}, false
	}
	return sh.Clone(), true
}

// Shapes returns every shape in paint order.
func (s *Store) Shapes() []Shape {
	return s.doc.Clone().List()
}

// Len returns the number of shapes.
func (s *Store) Len() int {
	return len(s.doc.Shapes)
}

// Update merges p into the shape with the given id.
func (s *Store) Update(id string, p Partial) error {
	sh, ok := s.doc.Shapes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
	}
	next := sh.Merge(p)
	next.ID = id
	if p.ParentID != nil {
		trial := s.doc.Clone()
		trial.Shapes[id] = next
		if err := trial.Validate(); err != nil {
			return err
		}
	}
	s.doc.Shapes[id] = next
	s.notify()
	return nil
}

// UpdateMany applies several partial updates as one mutation.
func (s *Store) UpdateMany(updates map[string]Partial) error {
	if len(updates) == 0 {
		return nil
	}
	next := s.doc.Clone()
	for id, p := range updates {
		sh, ok := next.Shapes[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
		}
		merged := sh.Merge(p)
		merged.ID = id
		next.Shapes[id] = merged
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.doc = next
	s.notify()
	return nil
}

// AddShapes appends shapes to the top of the paint order.
func (s *Store) AddShapes(shapes ...Shape) error {
	if len(shapes) == 0 {
		return nil
	}
	next := s.doc.Clone()
	for _, sh := range shapes {
		if _, ok := next.Shapes[sh.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateShape, sh.ID)
		}
		next.Shapes[sh.ID] = sh.Clone()
		next.Order = append(next.Order, sh.ID)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.doc = next
	s.notify()
	return nil
}

// DeleteShapes removes the given shapes and all of their descendants.
func (s *Store) DeleteShapes(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	doomed := make(map[string]bool)
	var mark func(id string)
	mark = func(id string) {
		if doomed[id] {
			return
		}
		doomed[id] = true
		for _, child := range s.doc.Children(id) {
			mark(child)
		}
	}
	for _, id := range ids {
		if _, ok := s.doc.Shapes[id]; !ok {
			return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
		}
		mark(id)
	}

	next := s.doc.Clone()
	for id := range doomed {
		delete(next.Shapes, id)
	}
	next.Order = slices.DeleteFunc(next.Order, func(id string) bool { return doomed[id] })
	s.doc = next
	s.notify()
	return nil
}

// Apply applies a patch to the document.
func (s *Store) Apply(p Patch) error {
	next, err := Apply(s.doc, p)
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("patch result: %w", err)
	}
	s.doc = next
	s.notify()
	return nil
}

// Load replaces the whole document.
func (s *Store) Load(doc Document) error {
	if doc.Shapes == nil {
		doc = New()
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	s.doc = doc.Clone()
	s.notify()
	return nil
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(s.doc.Clone())
		}
	}
}
