//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/artfolio/artfolio/canvas-go/internal/autosave"
	"github.com/artfolio/artfolio/canvas-go/internal/editor"
	"github.com/artfolio/artfolio/canvas-go/internal/gallery"
	"github.com/artfolio/artfolio/canvas-go/internal/render"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
	"github.com/artfolio/artfolio/canvas-go/internal/snap"
)

var (
	ed     *editor.Editor
	coord  *autosave.Coordinator
	origin = "https://artfolio.app"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ed = editor.New(slog.Default())
	ed.InitializeState(scene.NewDocument(editor.DefaultWidth, editor.DefaultHeight))
	coord = autosave.New(gallery.NewMemStore(), ed, autosave.DefaultInterval, slog.Default())

	api := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	api.Set("loadScene", js.FuncOf(loadScene))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	api.Set("bindGallery", js.FuncOf(bindGallery))
	api.Set("setSiteOrigin", js.FuncOf(setSiteOrigin))
	api.Set("addObject", js.FuncOf(addObject))
	api.Set("updateObject", js.FuncOf(updateObject))
	api.Set("deleteObject", js.FuncOf(deleteObject))
	api.Set("undo", js.FuncOf(undo))
	api.Set("redo", js.FuncOf(redo))
	api.Set("copySelection", js.FuncOf(copySelection))
	api.Set("paste", js.FuncOf(paste))
	api.Set("selectObjects", js.FuncOf(selectObjects))
	api.Set("clearSelection", js.FuncOf(clearSelection))
	api.Set("setZoom", js.FuncOf(setZoom))
	api.Set("setPan", js.FuncOf(setPan))
	api.Set("toggleGrid", js.FuncOf(toggleGrid))
	api.Set("toggleSnap", js.FuncOf(toggleSnap))
	api.Set("snapPosition", js.FuncOf(snapPosition))
	api.Set("save", js.FuncOf(save))

	// --- Queries (frontend ← engine) ---
	api.Set("render", js.FuncOf(renderScene))
	api.Set("getDocument", js.FuncOf(getDocument))
	api.Set("getSelection", js.FuncOf(getSelection))
	api.Set("getState", js.FuncOf(getState))

	// --- Events (engine → frontend) ---
	api.Set("onSaved", js.FuncOf(onSaved))
	api.Set("onSaveError", js.FuncOf(onSaveError))

	js.Global().Set("artfolioCanvas", api)
	js.Global().Set("artfolioCanvasReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func jsError(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func jsOK() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func jsJSON(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return jsError(err.Error())
	}
	return js.ValueOf(string(data))
}

// --- Command Handlers ---

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing scene JSON")
	}
	doc, err := scene.Decode([]byte(args[0].String()))
	if err != nil {
		return jsError(err.Error())
	}
	if err := scene.Validate(doc); err != nil {
		return jsError(err.Error())
	}
	ed.InitializeState(doc)
	return jsOK()
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	ed.InitializeState(scene.NewSampleDocument())
	return jsOK()
}

func bindGallery(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing gallery id")
	}
	coord.Bind(args[0].String())
	return jsOK()
}

func setSiteOrigin(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing origin")
	}
	origin = args[0].String()
	return jsOK()
}

func addObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing object JSON")
	}
	var obj scene.Object
	if err := json.Unmarshal([]byte(args[0].String()), &obj); err != nil {
		return jsError(err.Error())
	}
	if !obj.Type.Valid() {
		return jsError("unknown object type")
	}
	return js.ValueOf(ed.AddObject(&obj))
}

func updateObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return jsError("missing id or patch JSON")
	}
	var patch editor.Patch
	if err := json.Unmarshal([]byte(args[1].String()), &patch); err != nil {
		return jsError(err.Error())
	}
	return js.ValueOf(ed.UpdateObject(args[0].String(), patch))
}

func deleteObject(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing id")
	}
	return js.ValueOf(ed.DeleteObject(args[0].String()))
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Redo())
}

func copySelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(ed.Copy(ed.SelectedIDs()))
}

func paste(this js.Value, args []js.Value) interface{} {
	return jsJSON(ed.Paste())
}

func selectObjects(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		ed.ClearSelection()
		return jsOK()
	}
	arr := args[0]
	ids := make([]string, arr.Length())
	for i := 0; i < arr.Length(); i++ {
		ids[i] = arr.Index(i).String()
	}
	ed.SelectObjects(ids)
	return jsOK()
}

func clearSelection(this js.Value, args []js.Value) interface{} {
	ed.ClearSelection()
	return jsOK()
}

func setZoom(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("missing zoom")
	}
	ed.SetZoom(args[0].Float())
	return js.ValueOf(ed.Zoom())
}

func setPan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return jsError("missing pan coordinates")
	}
	ed.SetPan(args[0].Float(), args[1].Float())
	return jsOK()
}

func toggleGrid(this js.Value, args []js.Value) interface{} {
	ed.ToggleGrid()
	return js.ValueOf(ed.GridEnabled())
}

func toggleSnap(this js.Value, args []js.Value) interface{} {
	ed.ToggleSnap()
	return js.ValueOf(ed.SnapEnabled())
}

func snapPosition(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return jsError("missing id or coordinates")
	}
	x, y, guides := ed.SnapPosition(args[0].String(), args[1].Float(), args[2].Float())
	return jsJSON(struct {
		X      float64      `json:"x"`
		Y      float64      `json:"y"`
		Guides []snap.Guide `json:"guides"`
	}{x, y, guides})
}

func save(this js.Value, args []js.Value) interface{} {
	if err := coord.Save(context.Background()); err != nil {
		return jsError(err.Error())
	}
	return jsOK()
}

// --- Event Handlers ---

func onSaved(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return jsError("missing callback")
	}
	cb := args[0]
	coord.OnSaved(func(galleryID string) {
		cb.Invoke(galleryID)
	})
	return jsOK()
}

func onSaveError(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeFunction {
		return jsError("missing callback")
	}
	cb := args[0]
	coord.OnError(func(err error) {
		cb.Invoke(err.Error())
	})
	return jsOK()
}

// --- Query Handlers ---

func renderScene(this js.Value, args []js.Value) interface{} {
	scale := 1.0
	if len(args) > 0 && args[0].Type() == js.TypeNumber {
		scale = args[0].Float()
	}
	nodes := render.ProjectScene(ed.Document(), scale, render.Options{Origin: origin})
	return jsJSON(nodes)
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return jsJSON(ed.Document())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return jsJSON(ed.SelectedIDs())
}

func getState(this js.Value, args []js.Value) interface{} {
	state, lastErr := coord.Status()
	errMsg := ""
	if lastErr != nil {
		errMsg = lastErr.Error()
	}
	panX, panY := ed.Pan()
	return jsJSON(struct {
		Zoom              float64 `json:"zoom"`
		PanX              float64 `json:"panX"`
		PanY              float64 `json:"panY"`
		GridEnabled       bool    `json:"gridEnabled"`
		SnapEnabled       bool    `json:"snapEnabled"`
		HasUnsavedChanges bool    `json:"hasUnsavedChanges"`
		CanUndo           bool    `json:"canUndo"`
		CanRedo           bool    `json:"canRedo"`
		SaveState         string  `json:"saveState"`
		SaveError         string  `json:"saveError,omitempty"`
	}{
		Zoom:              ed.Zoom(),
		PanX:              panX,
		PanY:              panY,
		GridEnabled:       ed.GridEnabled(),
		SnapEnabled:       ed.SnapEnabled(),
		HasUnsavedChanges: ed.HasUnsavedChanges(),
		CanUndo:           ed.CanUndo(),
		CanRedo:           ed.CanRedo(),
		SaveState:         string(state),
		SaveError:         errMsg,
	})
}
