//go:build js && wasm

package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/inamate/whiteboard/internal/document"
	"github.com/inamate/whiteboard/internal/editor"
	"github.com/inamate/whiteboard/internal/geom"
	"github.com/inamate/whiteboard/internal/history"
	"github.com/inamate/whiteboard/internal/input"
)

var ed *editor.Editor

func main() {
	var err error
	ed, err = editor.New(nil, document.New())
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		return
	}

	// Create the editor API object
	api := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	api.Set("loadDocument", js.FuncOf(loadDocument))
	api.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	api.Set("pointerDown", js.FuncOf(pointerEvent(ed.PointerDown)))
	api.Set("pointerMove", js.FuncOf(pointerEvent(ed.PointerMove)))
	api.Set("pointerUp", js.FuncOf(pointerEvent(ed.PointerUp)))
	api.Set("wheel", js.FuncOf(wheel))
	api.Set("keyDown", js.FuncOf(keyEvent(ed.KeyDown)))
	api.Set("keyUp", js.FuncOf(keyEvent(ed.KeyUp)))
	api.Set("pinchStart", js.FuncOf(pinchEvent(ed.PinchStart)))
	api.Set("pinch", js.FuncOf(pinchEvent(ed.Pinch)))
	api.Set("pinchEnd", js.FuncOf(pinchEvent(ed.PinchEnd)))
	api.Set("selectTool", js.FuncOf(selectTool))
	api.Set("setSelection", js.FuncOf(setSelection))
	api.Set("undo", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return result(ed.Undo()) }))
	api.Set("redo", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return result(ed.Redo()) }))
	api.Set("onChange", js.FuncOf(onChange))
	api.Set("onHistory", js.FuncOf(onHistory))

	// --- Queries (frontend ← editor) ---
	api.Set("hitTest", js.FuncOf(hitTest))
	api.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	api.Set("getDocument", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return toJSON(ed.Document()) }))
	api.Set("getSelection", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return toJSON(ed.SelectedIDs()) }))
	api.Set("getPath", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return js.ValueOf(ed.Path()) }))
	api.Set("getCursor", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return js.ValueOf(string(ed.Cursor())) }))
	api.Set("getCamera", js.FuncOf(func(this js.Value, args []js.Value) interface{} { return toJSON(ed.Camera()) }))
	api.Set("getBrush", js.FuncOf(getBrush))
	api.Set("getHistory", js.FuncOf(getHistory))

	js.Global().Set("whiteboardEditor", api)

	// Signal that WASM is ready
	js.Global().Set("whiteboardWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func result(err error) js.Value {
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func toJSON(v any) js.Value {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf("null")
	}
	return js.ValueOf(string(data))
}

// decode parses the first argument, a JSON string, into v.
func decode(args []js.Value, v any) error {
	if len(args) < 1 {
		return errMissingArg
	}
	return json.Unmarshal([]byte(args[0].String()), v)
}

var errMissingArg = errors.New("missing argument")

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	var doc document.Document
	if err := decode(args, &doc); err != nil {
		return result(err)
	}
	return result(ed.Load(doc))
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	return result(ed.Load(document.NewSampleDocument()))
}

func pointerEvent(fn func(input.PointerEvent) error) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		var e input.PointerEvent
		if err := decode(args, &e); err != nil {
			return result(err)
		}
		return result(fn(e))
	}
}

func keyEvent(fn func(input.KeyEvent) error) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		var e input.KeyEvent
		if err := decode(args, &e); err != nil {
			return result(err)
		}
		return result(fn(e))
	}
}

func pinchEvent(fn func(input.PinchEvent) error) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		var e input.PinchEvent
		if err := decode(args, &e); err != nil {
			return result(err)
		}
		return result(fn(e))
	}
}

func wheel(this js.Value, args []js.Value) interface{} {
	var e input.WheelEvent
	if err := decode(args, &e); err != nil {
		return result(err)
	}
	return result(ed.Wheel(e))
}

func selectTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return result(errMissingArg)
	}
	return result(ed.SelectTool(args[0].String(), nil))
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		ed.SelectShapes()
		return nil
	}

	arr := args[0]
	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	ed.SelectShapes(ids...)
	return nil
}

// onChange calls the given function with the document JSON after every change.
func onChange(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	fn := args[0]
	ed.Subscribe(func(doc document.Document) {
		fn.Invoke(toJSON(doc))
	})
	return nil
}

func onHistory(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return nil
	}
	fn := args[0]
	ed.History().Subscribe(func(e history.Event) {
		fn.Invoke(e.Name, e.Frame, e.FrameID.String())
	})
	return nil
}

// --- Query Handlers ---

// hitTest takes a screen point.
func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return toJSON(input.Target{Kind: input.TargetCanvas})
	}
	p := ed.Viewport().ScreenToPage(geom.V(args[0].Float(), args[1].Float()))
	return toJSON(ed.HitTest(p))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	b, ok := ed.SelectionBounds()
	if !ok {
		return js.ValueOf("null")
	}
	return toJSON(b)
}

func getBrush(this js.Value, args []js.Value) interface{} {
	b, ok := ed.Brush()
	if !ok {
		return js.ValueOf("null")
	}
	return toJSON(b)
}

func getHistory(this js.Value, args []js.Value) interface{} {
	h := ed.History()
	return js.ValueOf(map[string]interface{}{
		"state":   string(h.State()),
		"frame":   h.Frame(),
		"frames":  h.Len(),
		"canUndo": h.CanUndo(),
		"canRedo": h.CanRedo(),
	})
}
