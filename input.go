package easel

// ControllerState is the phase of the pointer state machine.
type ControllerState uint8

const (
	StateIdle    ControllerState = iota // no pointer held
	StateDrawing                        // building a preview from the anchor
	StateMoving                         // dragging the selected shape
)

// String returns the state name.
func (s ControllerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Controller translates pointer events into shape construction, preview and
// movement. It never mutates a Scene; created shapes are returned to the
// caller.
type Controller struct {
	tools Tools
	style StyleProvider

	state    ControllerState
	down     bool
	anchor   Point
	selected Shape
	preview  Shape
}

// NewController creates an idle controller. A nil tools map falls back to
// DefaultTools; a nil style provider leaves created shapes with their
// construction defaults.
func NewController(tools Tools, style StyleProvider) *Controller {
	if tools == nil {
		tools = DefaultTools()
	}
	return &Controller{tools: tools, style: style}
}

// State returns the current phase.
func (c *Controller) State() ControllerState { return c.state }

// Anchor returns the press point, or the last drag point while moving. ok is
// false when no pointer is held.
func (c *Controller) Anchor() (Point, bool) { return c.anchor, c.down }

// Selected returns the selected shape, or nil.
func (c *Controller) Selected() Shape { return c.selected }

// SetSelected replaces the selection. nil clears it.
func (c *Controller) SetSelected(s Shape) { c.selected = s }

// Preview returns the in-progress shape of the current drag, or nil.
func (c *Controller) Preview() Shape { return c.preview }

// SetStyleProvider swaps the provider consulted when shapes are built.
func (c *Controller) SetStyleProvider(p StyleProvider) { c.style = p }

// Tools returns the strategy table.
func (c *Controller) Tools() Tools { return c.tools }

// PointerDown records p as the anchor. The scene is not touched.
func (c *Controller) PointerDown(p Point) {
	c.down = true
	c.anchor = p
	c.preview = nil
	c.state = StateIdle
}

// PointerDrag advances the drag to p. While selecting with a selection, the
// selected shape moves by the delta from the previous drag point and the
// anchor follows p. Otherwise the strategy for tool builds a preview from the
// original anchor. It returns the current preview, which may be nil.
func (c *Controller) PointerDrag(p Point, tool ToolID, selecting bool) Shape {
	if !c.down {
		return nil
	}
	if selecting {
		c.preview = nil
		if c.selected == nil {
			return nil
		}
		dx, dy := p.Sub(c.anchor)
		c.selected.Move(dx, dy)
		c.anchor = p
		c.state = StateMoving
		return nil
	}

	c.state = StateDrawing
	sh, ok := c.tools.Build(tool, c.anchor, p)
	if !ok {
		c.preview = nil
		return nil
	}
	applyActiveStyle(sh, c.style)
	c.preview = sh
	return sh
}

// PointerUp ends the drag at p. Outside selection mode the strategy for tool
// builds the final shape from (anchor, p) and the active style and layer are
// applied to it; the caller adds it to the scene. ok is false when nothing
// was built.
func (c *Controller) PointerUp(p Point, tool ToolID, selecting bool) (Shape, bool) {
	wasDown := c.down
	anchor := c.anchor
	c.reset()
	if !wasDown || selecting {
		return nil, false
	}
	sh, ok := c.tools.Build(tool, anchor, p)
	if !ok {
		return nil, false
	}
	applyActiveStyle(sh, c.style)
	return sh, true
}

// Cancel abandons any drag in progress without building a shape.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.down = false
	c.anchor = Point{}
	c.preview = nil
	c.state = StateIdle
}

// --- Hit testing ---

// HitTest returns the topmost shape containing p among those the visibility
// filter lets through, or nil. Shapes are searched in reverse draw order so
// that what is painted last is hit first.
func HitTest(shapes []Shape, p Point, layers LayerVisibility, mode TagMode, filterText string) Shape {
	ordered := DrawOrder(shapes)
	for i := len(ordered) - 1; i >= 0; i-- {
		sh := ordered[i]
		if !IsShapeVisible(sh, layers, mode, filterText) {
			continue
		}
		if sh.Contains(p) {
			return sh
		}
	}
	return nil
}
