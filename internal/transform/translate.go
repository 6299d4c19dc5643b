package transform

import (
	"math"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/geom"
)

// TranslateDelta is the drag offset from origin to current. With axisLock
// the smaller component is dropped.
func TranslateDelta(origin, current geom.Vec, axisLock bool) geom.Vec {
	d := current.Sub(origin)
	if axisLock {
		if math.Abs(d.X) > math.Abs(d.Y) {
			d.Y = 0
		} else {
			d.X = 0
		}
	}
	return d
}

// Translate moves a fixed set of shapes by a common offset from their
// captured points.
type Translate struct {
	ids     []string
	initial map[string]geom.Vec
}

func NewTranslate(shapes []document.Shape) *Translate {
	t := &Translate{initial: make(map[string]geom.Vec, len(shapes))}
	for _, s := range shapes {
		t.ids = append(t.ids, s.ID)
		t.initial[s.ID] = s.Point
	}
	return t
}

// IDs returns the ids of the captured shapes in capture order.
func (t *Translate) IDs() []string { return t.ids }

// Empty reports whether there is nothing to move.
func (t *Translate) Empty() bool { return len(t.ids) == 0 }

// Step returns updates placing every shape at its captured point plus delta.
func (t *Translate) Step(delta geom.Vec) map[string]document.Partial {
	updates := make(map[string]document.Partial, len(t.ids))
	for _, id := range t.ids {
		updates[id] = document.PointPartial(t.initial[id].Add(delta))
	}
	return updates
}

// Revert returns updates placing every shape back at its captured point.
func (t *Translate) Revert() map[string]document.Partial {
	return t.Step(geom.Vec{})
}
