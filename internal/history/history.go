// Package history records document changes as undoable frames.
//
// The manager observes a document store. Every change committed while it is
// running becomes one frame. While paused, changes are only noted; resuming
// folds them all into a single frame, which is how a drag that touches the
// document on every pointer move still undoes in one step.
package history

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/inamate/whiteboard/internal/document"
)

var (
	ErrNotStopped = errors.New("history is not stopped")
	ErrNotRunning = errors.New("history is not running")
	ErrNotPaused  = errors.New("history is not paused")
)

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Event names.
const (
	EventCommit = "commit"
	EventUndo   = "undo"
	EventRedo   = "redo"
)

// Event is sent to subscribers after a commit, undo or redo. Frame is the
// frame pointer after the operation; FrameID identifies the frame that was
// committed, undone or redone.
type Event struct {
	Name    string
	Frame   int
	FrameID uuid.UUID
}

// Frame is one undo step. Undo takes the document from the state after the
// edit back to the state before it; Redo goes the other way.
type Frame struct {
	ID   uuid.UUID
	Undo document.Patch
	Redo document.Patch
}

// Store is the document the manager records.
type Store interface {
	Snapshot() document.Document
	Apply(p document.Patch) error
	Load(doc document.Document) error
	Subscribe(fn document.Listener) (cancel func())
}

type Manager struct {
	store  Store
	log    *slog.Logger
	state  State
	frames []Frame
	frame  int
	prev   document.Document

	dirty    bool
	skipNext bool
	unsub    func()

	listeners map[int]func(Event)
	nextID    int
}

// New creates a stopped manager for store. A nil logger uses slog.Default().
func New(store Store, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store:     store,
		log:       log,
		state:     StateStopped,
		frame:     -1,
		listeners: make(map[int]func(Event)),
	}
}

func (m *Manager) State() State { return m.state }

// Frame returns the index of the last applied frame, or -1 when there is
// nothing to undo.
func (m *Manager) Frame() int { return m.frame }

// Len returns the number of recorded frames, including undone ones.
func (m *Manager) Len() int { return len(m.frames) }

func (m *Manager) CanUndo() bool { return m.frame >= 0 }

func (m *Manager) CanRedo() bool { return m.frame < len(m.frames)-1 }

// Subscribe registers fn for commit, undo and redo events.
func (m *Manager) Subscribe(fn func(Event)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// Start begins recording from the store's current state.
func (m *Manager) Start() error {
	if m.state != StateStopped {
		return fmt.Errorf("start: %w", ErrNotStopped)
	}
	m.prev = m.store.Snapshot()
	m.unsub = m.store.Subscribe(m.Persist)
	m.state = StateRunning
	return nil
}

// Stop discards every frame and stops observing the store.
func (m *Manager) Stop() {
	if m.state == StateStopped {
		return
	}
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.frames = nil
	m.frame = -1
	m.dirty = false
	m.skipNext = false
	m.state = StateStopped
}

// Reset stops and restarts the manager.
func (m *Manager) Reset() error {
	m.Stop()
	return m.Start()
}

// Pause stops recording individual changes until Resume.
func (m *Manager) Pause() error {
	switch m.state {
	case StatePaused:
		return nil
	case StateRunning:
		m.state = StatePaused
		m.dirty = false
		return nil
	}
	return fmt.Errorf("pause: %w", ErrNotRunning)
}

// Resume commits whatever changed while paused as one frame and goes back
// to recording.
func (m *Manager) Resume() error {
	switch m.state {
	case StateRunning:
		return nil
	case StatePaused:
		m.state = StateRunning
		if m.dirty {
			m.dirty = false
			m.commit(m.store.Snapshot())
		}
		return nil
	}
	return fmt.Errorf("resume: %w", ErrNotPaused)
}

// Persist is called with the snapshot produced by every document change.
func (m *Manager) Persist(snapshot document.Document) {
	if m.skipNext {
		m.skipNext = false
		return
	}
	switch m.state {
	case StatePaused:
		m.dirty = true
	case StateRunning:
		m.commit(snapshot)
	}
}

// commit records the change from the baseline to snapshot as a new frame,
// dropping any frames that had been undone. A change that nets out to
// nothing records no frame.
func (m *Manager) commit(snapshot document.Document) {
	undo, err := document.Diff(snapshot, m.prev)
	if err != nil {
		m.log.Error("history diff failed, change not recorded", "error", err)
		m.prev = snapshot
		return
	}
	if undo.IsEmpty() {
		m.prev = snapshot
		return
	}
	redo, err := document.Diff(m.prev, snapshot)
	if err != nil {
		m.log.Error("history diff failed, change not recorded", "error", err)
		m.prev = snapshot
		return
	}
	f := Frame{
		ID:   uuid.New(),
		Undo: undo,
		Redo: redo,
	}
	m.frame++
	m.frames = append(m.frames[:m.frame], f)
	m.prev = snapshot
	m.log.Debug("history commit", "frame", m.frame, "ops", len(f.Redo))
	m.emit(EventCommit, f.ID)
}

// Undo reverts the last applied frame. It is a no-op when there is nothing
// to undo. A paused manager is resumed first so a pending change becomes a
// frame before it is undone.
func (m *Manager) Undo() error {
	if m.state == StatePaused {
		if err := m.Resume(); err != nil {
			return err
		}
	}
	if m.frame < 0 {
		return nil
	}
	f := m.frames[m.frame]
	if err := m.applyQuiet(f.Undo); err != nil {
		return fmt.Errorf("undo frame %d: %w", m.frame, err)
	}
	m.prev = m.store.Snapshot()
	m.frame--
	m.log.Debug("history undo", "frame", m.frame, "ops", len(f.Undo))
	m.emit(EventUndo, f.ID)
	return nil
}

// Redo reapplies the next undone frame. It is a no-op at the top of the stack.
func (m *Manager) Redo() error {
	if m.state == StatePaused {
		if err := m.Resume(); err != nil {
			return err
		}
	}
	if m.frame >= len(m.frames)-1 {
		return nil
	}
	f := m.frames[m.frame+1]
	if err := m.applyQuiet(f.Redo); err != nil {
		return fmt.Errorf("redo frame %d: %w", m.frame+1, err)
	}
	m.frame++
	m.prev = m.store.Snapshot()
	m.log.Debug("history redo", "frame", m.frame, "ops", len(f.Redo))
	m.emit(EventRedo, f.ID)
	return nil
}

// Restore reloads the baseline, dropping changes made since the last frame
// without touching the stack.
func (m *Manager) Restore() error {
	if m.state == StateStopped {
		return nil
	}
	m.skipNext = true
	if err := m.store.Load(m.prev.Clone()); err != nil {
		m.skipNext = false
		return fmt.Errorf("restore: %w", err)
	}
	m.dirty = false
	return nil
}

// applyQuiet applies p without recording the resulting change.
func (m *Manager) applyQuiet(p document.Patch) error {
	m.skipNext = true
	if err := m.store.Apply(p); err != nil {
		m.skipNext = false
		return err
	}
	return nil
}

func (m *Manager) emit(name string, frameID uuid.UUID) {
	e := Event{Name: name, Frame: m.frame, FrameID: frameID}
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := m.listeners[id]; ok {
			fn(e)
		}
	}
}
