package easel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ErrUnknownTool is returned when selecting a tool id with no strategy.
var ErrUnknownTool = errors.New("easel: unknown tool")

// Status strings passed to Editor.OnStatus.
const (
	StatusShapeDeleted     = "Shape deleted"
	StatusSelectionCleared = "Selection cleared"
	StatusTagsSaved        = "Tags saved"
	StatusLayerDeleted     = "Layer deleted"
	StatusLayerProtected   = "Layer is protected"
)

// Event describes a change to the drawing, published to an EventStore.
type Event struct {
	Type    EventType
	ShapeID uuid.UUID // zero for layer events and cleared selections
	Kind    ShapeKind
	Layer   int
	X, Y    float64 // shape center, or zero
}

// EventStore receives editor events. See the ecs sub-package for a donburi
// adapter.
type EventStore interface {
	EmitEvent(event Event)
}

// EditorConfig holds the construction parameters of an Editor.
type EditorConfig struct {
	// Width and Height are the canvas size used by MoveSelectedToCenter.
	Width, Height float64
	// DuplicateOffset translates duplicates. Zero means 20, 20.
	DuplicateOffset Point
	// Tools is the strategy table. Nil means DefaultTools.
	Tools Tools
	// Settings is the style new shapes receive. Nil means DefaultToolSettings.
	Settings *ToolSettings
}

var defaultDuplicateOffset = Point{X: 20, Y: 20}

// Editor is a drawing session: it owns a scene, a layer registry, the pointer
// controller and a compositor, and exposes the actions a UI binds to. All
// methods run on the UI goroutine.
type Editor struct {
	// OnStatus, when set, receives short human-readable status messages.
	OnStatus func(string)

	scene    *Scene
	layers   *LayerRegistry
	ctl      *Controller
	comp     *Compositor
	settings *ToolSettings
	store    EventStore

	tool      ToolID
	selecting bool
	tagMode   TagMode
	filter    string

	width, height float64
	dupOffset     Point
}

// NewEditor creates an editor with an empty scene, the permanent layers and
// the rectangle tool active.
func NewEditor(cfg EditorConfig) *Editor {
	if cfg.Settings == nil {
		cfg.Settings = DefaultToolSettings()
	}
	if cfg.DuplicateOffset == (Point{}) {
		cfg.DuplicateOffset = defaultDuplicateOffset
	}
	e := &Editor{
		scene:     NewScene(),
		layers:    NewLayerRegistry(),
		comp:      NewCompositor(),
		settings:  cfg.Settings,
		tool:      ToolRectangle,
		width:     cfg.Width,
		height:    cfg.Height,
		dupOffset: cfg.DuplicateOffset,
	}
	e.ctl = NewController(cfg.Tools, e)
	e.syncLayer()
	return e
}

// ActiveStyle implements StyleProvider using the editor's tool settings.
func (e *Editor) ActiveStyle() Style { return e.settings.ActiveStyle() }

// ActiveLayer implements StyleProvider: new shapes land on the layer named by
// the tool settings.
func (e *Editor) ActiveLayer() int {
	e.syncLayer()
	return e.layers.Current()
}

// syncLayer makes the registry's current layer follow ToolSettings.Layer. A
// settings layer the registry does not know is reset to the current layer.
func (e *Editor) syncLayer() {
	if id := e.settings.Layer; e.layers.Known(id) {
		e.layers.SetCurrent(id)
		return
	}
	e.settings.Layer = e.layers.Current()
}

// Scene returns the shape store.
func (e *Editor) Scene() *Scene { return e.scene }

// Layers returns the layer registry.
func (e *Editor) Layers() *LayerRegistry { return e.layers }

// Controller returns the pointer controller.
func (e *Editor) Controller() *Controller { return e.ctl }

// Compositor returns the compositor used by Render.
func (e *Editor) Compositor() *Compositor { return e.comp }

// Settings returns the mutable tool settings applied to new shapes. Setting
// Layer has the same effect as SetCurrentLayer for a known layer.
func (e *Editor) Settings() *ToolSettings { return e.settings }

// SetEventStore sets the receiver of editor events. nil disables events.
func (e *Editor) SetEventStore(s EventStore) { e.store = s }

// Selected returns the selected shape, or nil.
func (e *Editor) Selected() Shape { return e.ctl.Selected() }

// Preview returns the shape of the drag in progress, or nil.
func (e *Editor) Preview() Shape { return e.ctl.Preview() }

// Tool returns the active tool id.
func (e *Editor) Tool() ToolID { return e.tool }

// SelectionMode reports whether pointer input selects and moves instead of drawing.
func (e *Editor) SelectionMode() bool { return e.selecting }

// TagFilter returns the tag mode and filter text.
func (e *Editor) TagFilter() (TagMode, string) { return e.tagMode, e.filter }

// CanvasSize returns the canvas dimensions.
func (e *Editor) CanvasSize() (w, h float64) { return e.width, e.height }

// SetCanvasSize updates the canvas dimensions.
func (e *Editor) SetCanvasSize(w, h float64) {
	e.width, e.height = w, h
}

// SetTool activates a drawing tool and leaves selection mode.
func (e *Editor) SetTool(id ToolID) error {
	if _, ok := e.ctl.Tools()[id]; !ok {
		return fmt.Errorf("set tool %q: %w", id, ErrUnknownTool)
	}
	e.tool = id
	e.selecting = false
	return nil
}

// SetSelectionMode switches between selecting and drawing. Any drag in
// progress is abandoned.
func (e *Editor) SetSelectionMode(on bool) {
	if on != e.selecting {
		e.ctl.Cancel()
	}
	e.selecting = on
}

// SetTagFilter sets the tag mode and the filter text.
func (e *Editor) SetTagFilter(mode TagMode, text string) {
	e.tagMode = mode
	e.filter = text
}

// --- Pointer ---

// PointerDown starts a press at p. In selection mode the topmost visible
// shape under p becomes the selection, or the selection is cleared.
func (e *Editor) PointerDown(p Point) {
	if e.selecting {
		e.SelectAt(p)
	}
	e.ctl.PointerDown(p)
}

// PointerDrag continues the press at p and returns the preview, if any.
func (e *Editor) PointerDrag(p Point) Shape {
	preview := e.ctl.PointerDrag(p, e.tool, e.selecting)
	if e.ctl.State() == StateMoving {
		e.emit(EventShapeMoved, e.ctl.Selected())
	}
	return preview
}

// PointerUp ends the press at p. A shape built by the active tool is added to
// the scene and returned.
func (e *Editor) PointerUp(p Point) (Shape, bool) {
	sh, ok := e.ctl.PointerUp(p, e.tool, e.selecting)
	if !ok {
		return nil, false
	}
	e.scene.Add(sh)
	Logger().Debug("shape created", shapeAttr(sh))
	e.emit(EventShapeCreated, sh)
	return sh, true
}

// SelectAt selects the topmost visible shape containing p, clearing the
// selection when there is none. It returns the new selection.
func (e *Editor) SelectAt(p Point) Shape {
	hit := HitTest(e.scene.Snapshot(), p, e.layers, e.tagMode, e.filter)
	e.setSelected(hit)
	return hit
}

func (e *Editor) setSelected(s Shape) {
	if s == e.ctl.Selected() {
		return
	}
	e.ctl.SetSelected(s)
	e.emit(EventShapeSelected, s)
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.setSelected(nil)
}

// --- Selection actions ---

// DeleteSelected removes the selected shape from the scene. It reports
// whether a shape was removed.
func (e *Editor) DeleteSelected() bool {
	sel := e.ctl.Selected()
	if sel == nil {
		return false
	}
	e.scene.Remove(sel)
	e.ctl.SetSelected(nil)
	Logger().Debug("shape deleted", shapeAttr(sel))
	e.emit(EventShapeDeleted, sel)
	e.status(StatusShapeDeleted)
	return true
}

// DuplicateSelected adds an offset copy of the selection carrying its style
// and layer. The selection is unchanged.
func (e *Editor) DuplicateSelected() (Shape, bool) {
	sel := e.ctl.Selected()
	if sel == nil {
		return nil, false
	}
	dup := sel.Duplicate(e.dupOffset.X, e.dupOffset.Y)
	e.scene.Add(dup)
	e.emit(EventShapeCreated, dup)
	return dup, true
}

// DivideSelected replaces the selection with its two halves and clears the
// selection.
func (e *Editor) DivideSelected() ([2]Shape, bool) {
	sel := e.ctl.Selected()
	if sel == nil {
		return [2]Shape{}, false
	}
	halves := sel.Divide()
	e.scene.Remove(sel)
	e.ctl.SetSelected(nil)
	e.emit(EventShapeDeleted, sel)
	for _, h := range halves {
		e.scene.Add(h)
		e.emit(EventShapeCreated, h)
	}
	return halves, true
}

// MoveSelectedToCenter centers the selection on the canvas.
func (e *Editor) MoveSelectedToCenter() bool {
	sel := e.ctl.Selected()
	if sel == nil {
		return false
	}
	sel.MoveToCenter(e.width, e.height)
	e.emit(EventShapeMoved, sel)
	return true
}

// RestyleSelected assigns st to the selection.
func (e *Editor) RestyleSelected(st Style) bool {
	sel := e.ctl.Selected()
	if sel == nil {
		return false
	}
	sel.SetStyle(st)
	e.emit(EventShapeRestyled, sel)
	return true
}

// ApplySettingsToSelected assigns the current tool style to the selection.
func (e *Editor) ApplySettingsToSelected() bool {
	return e.RestyleSelected(e.settings.ActiveStyle())
}

// SaveTags replaces the selection's tags with the whitespace-separated
// tokens of raw.
func (e *Editor) SaveTags(raw string) bool {
	sel := e.ctl.Selected()
	if sel == nil {
		return false
	}
	sel.ReplaceTags(ParseTags(raw))
	e.emit(EventShapeRestyled, sel)
	e.status(StatusTagsSaved)
	return true
}

// SelectedTags returns the selection's tags joined by spaces, or "".
func (e *Editor) SelectedTags() string {
	sel := e.ctl.Selected()
	if sel == nil {
		return ""
	}
	return sel.TagsString()
}

// --- Layers ---

// AddLayer allocates a new visible layer and returns its id.
func (e *Editor) AddLayer() int {
	id := e.layers.AddLayer()
	Logger().Info("layer added", slog.Int("layer", id))
	e.emitLayer(EventLayerAdded, id)
	return id
}

// DeleteLayer removes every shape on layer id and then the layer itself.
// Protected and unknown layers are rejected and nothing changes.
func (e *Editor) DeleteLayer(id int) error {
	e.syncLayer()
	if IsProtected(id) || !e.layers.Known(id) {
		err := e.layers.DeleteLayer(id)
		Logger().Warn("layer delete rejected", slog.Int("layer", id), slog.Any("err", err))
		if errors.Is(err, ErrProtectedLayer) {
			e.status(StatusLayerProtected)
		}
		return err
	}
	removed := e.scene.RemoveLayer(id)
	for _, sh := range removed {
		if sh == e.ctl.Selected() {
			e.ctl.SetSelected(nil)
		}
		e.emit(EventShapeDeleted, sh)
	}
	if err := e.layers.DeleteLayer(id); err != nil {
		return err
	}
	e.settings.Layer = e.layers.Current()
	Logger().Info("layer deleted", slog.Int("layer", id), slog.Int("shapes", len(removed)))
	e.emitLayer(EventLayerDeleted, id)
	e.status(StatusLayerDeleted)
	return nil
}

// SetLayerVisible shows or hides a known layer.
func (e *Editor) SetLayerVisible(id int, visible bool) {
	e.layers.SetVisible(id, visible)
}

// SetCurrentLayer chooses the layer new shapes are placed on.
func (e *Editor) SetCurrentLayer(id int) error {
	if !e.layers.Known(id) {
		return fmt.Errorf("set current layer %d: %w", id, ErrUnknownLayer)
	}
	e.layers.SetCurrent(id)
	e.settings.Layer = id
	return nil
}

// --- Keyboard ---

// HandleKey runs the shortcut bound to k. Delete and Backspace delete the
// selection; Escape clears it. It reports whether the key did anything.
func (e *Editor) HandleKey(k Key) bool {
	switch k {
	case KeyDelete, KeyBackspace:
		return e.DeleteSelected()
	case KeyEscape:
		if e.ctl.Selected() == nil {
			return false
		}
		e.ClearSelection()
		e.status(StatusSelectionCleared)
		return true
	}
	return false
}

// --- Rendering ---

// Render draws the scene, selection highlight and preview onto dst.
func (e *Editor) Render(dst Surface) {
	e.comp.Render(dst, e.scene.Snapshot(), e.ctl.Selected(), e.ctl.Preview(),
		e.tagMode, e.filter, e.layers)
}

// SetDebugMode toggles render stats logging.
func (e *Editor) SetDebugMode(on bool) {
	e.comp.SetDebugMode(on)
}

func (e *Editor) status(msg string) {
	if e.OnStatus != nil {
		e.OnStatus(msg)
	}
}

func (e *Editor) emit(t EventType, s Shape) {
	if e.store == nil {
		return
	}
	ev := Event{Type: t}
	if s != nil {
		c := s.Center()
		ev.ShapeID = s.ID()
		ev.Kind = s.Kind()
		ev.Layer = s.Layer()
		ev.X, ev.Y = c.X, c.Y
	}
	e.store.EmitEvent(ev)
}

func (e *Editor) emitLayer(t EventType, id int) {
	if e.store == nil {
		return
	}
	e.store.EmitEvent(Event{Type: t, Layer: id})
}
