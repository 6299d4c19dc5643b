package input

import "github.com/inamate/whiteboard/internal/geom"

// Tracker records the page-space points of the gesture in progress and the
// modifier keys last reported.
type Tracker struct {
	OriginPoint   geom.Vec
	CurrentPoint  geom.Vec
	PreviousPoint geom.Vec
	Modifiers     Modifiers
	IsPointerDown bool
	IsPinching    bool
}

func (t *Tracker) PointerDown(p geom.Vec, m Modifiers) {
	t.OriginPoint = p
	t.PreviousPoint = p
	t.CurrentPoint = p
	t.Modifiers = m
	t.IsPointerDown = true
}

func (t *Tracker) PointerMove(p geom.Vec, m Modifiers) {
	t.PreviousPoint = t.CurrentPoint
	t.CurrentPoint = p
	t.Modifiers = m
}

func (t *Tracker) PointerUp(p geom.Vec, m Modifiers) {
	t.PreviousPoint = t.CurrentPoint
	t.CurrentPoint = p
	t.Modifiers = m
	t.IsPointerDown = false
}

// Key records the modifier state carried by a key event. A key event for a
// modifier key itself sets or clears that modifier.
func (t *Tracker) Key(e KeyEvent, down bool) {
	m := e.Modifiers
	switch e.Key {
	case KeyShift:
		m.Shift = down
	case KeyAlt:
		m.Alt = down
	case KeyControl:
		m.Ctrl = down
	case KeyMeta:
		m.Meta = down
	}
	t.Modifiers = m
}

func (t *Tracker) PinchStart(p geom.Vec) {
	t.IsPinching = true
	t.OriginPoint = p
	t.CurrentPoint = p
	t.PreviousPoint = p
}

func (t *Tracker) PinchEnd() {
	t.IsPinching = false
}

// Delta is the displacement of the current point from the gesture origin.
func (t *Tracker) Delta() geom.Vec {
	return t.CurrentPoint.Sub(t.OriginPoint)
}

// Reset forgets the current gesture.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
