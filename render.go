package easel

import (
	"time"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandShadow CommandType = iota // flat offset silhouette
	CommandFill                      // gradient interior
	CommandBorder                    // outline stroke
)

// Compositor constants.
const (
	shadowOffset = 10.0
	previewAlpha = 0.5
)

var (
	dashDottedSimple  = []float64{10}
	dashDottedComplex = []float64{30, 10, 15, 10}

	// SelectionColor strokes the border of the selected shape.
	SelectionColor = ColorRed
	// BorderColor strokes every other border.
	BorderColor = ColorBlack
	// ShadowColor fills simple shadows.
	ShadowColor = ColorGray
)

// DashPattern returns the dash lengths for a border kind, or nil for a solid
// line. The returned slice is a fresh copy.
func DashPattern(k BorderKind) []float64 {
	var src []float64
	switch k {
	case BorderDottedSimple:
		src = dashDottedSimple
	case BorderDottedComplex:
		src = dashDottedComplex
	default:
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// shadowParams returns the shadow offset and color for a style. ok is false
// when no shadow is drawn.
func shadowParams(st Style) (dx, dy float64, c Color, ok bool) {
	switch st.Shadow {
	case ShadowSimple:
		return shadowOffset, shadowOffset, ShadowColor, true
	case ShadowColored:
		return shadowOffset, shadowOffset, st.FillPrimary.Darker(), true
	case ShadowSimpleInverse:
		return -shadowOffset, -shadowOffset, ShadowColor, true
	case ShadowColoredInverse:
		return -shadowOffset, -shadowOffset, st.FillPrimary.Darker(), true
	default:
		return 0, 0, Color{}, false
	}
}

// fillPaint picks the gradient for a silhouette: radial for ellipses,
// horizontal linear for rectangles.
func fillPaint(r Region, st Style) Paint {
	kind := GradientLinear
	if r.Kind == RegionEllipse {
		kind = GradientRadial
	}
	return GradientPaint(kind, st.FillPrimary, st.FillSecondary)
}

// RenderCommand is a single draw instruction emitted during the render pass.
type RenderCommand struct {
	Type   CommandType
	Region Region
	Paint  Paint     // CommandShadow, CommandFill
	Stroke Color     // CommandBorder
	Width  float64   // CommandBorder
	Dashes []float64 // CommandBorder; nil strokes solid
	Layer  int
	Alpha  float64
	Shape  Shape

	treeOrder int // assigned during emission for stable sort
}

// RenderStats describes the most recent render pass.
type RenderStats struct {
	Shapes       int
	Drawn        int
	Skipped      int
	Commands     int
	EmitTime     time.Duration
	SortTime     time.Duration
	SubmitTime   time.Duration
	PreviewDrawn bool
}

// Compositor turns a shape collection into ordered surface calls. Buffers
// are reused across passes; a Compositor is not safe for concurrent use.
type Compositor struct {
	commands []RenderCommand
	sortBuf  []RenderCommand
	overlay  []RenderCommand
	debug    bool
	stats    RenderStats
}

// NewCompositor creates a compositor with preallocated command buffers.
func NewCompositor() *Compositor {
	return &Compositor{
		commands: make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:  make([]RenderCommand, 0, defaultCommandCap),
	}
}

const defaultCommandCap = 256

// SetDebugMode enables per-pass timing stats, logged at debug level.
func (c *Compositor) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Stats returns the stats of the last pass. Timings are only filled in debug mode.
func (c *Compositor) Stats() RenderStats {
	return c.stats
}

// Commands returns the sorted commands of the last pass followed by the
// preview overlay. The returned slice MUST NOT be mutated.
func (c *Compositor) Commands() []RenderCommand {
	out := make([]RenderCommand, 0, len(c.commands)+len(c.overlay))
	out = append(out, c.commands...)
	return append(out, c.overlay...)
}

// Render clears dst and draws shapes bottom layer first. Within a layer,
// shapes keep their order in the slice. Each visible shape draws its shadow,
// fill and border in that order; selected gets the highlight border. preview,
// when non-nil, is drawn last at half opacity without shadow or highlight.
func (c *Compositor) Render(dst Surface, shapes []Shape, selected, preview Shape,
	mode TagMode, filterText string, layers LayerVisibility) {
	var t0 time.Time
	c.stats = RenderStats{}
	c.commands = c.commands[:0]
	c.overlay = c.overlay[:0]

	if c.debug {
		t0 = time.Now()
	}

	snapshot := make([]Shape, len(shapes))
	copy(snapshot, shapes)
	c.stats.Shapes = len(snapshot)

	treeOrder := 0
	for _, sh := range snapshot {
		if !IsShapeVisible(sh, layers, mode, filterText) {
			c.stats.Skipped++
			continue
		}
		c.commands = c.emitShape(c.commands, sh, sh == selected, 1, true, &treeOrder)
		c.stats.Drawn++
	}

	if preview != nil {
		c.overlay = c.emitShape(c.overlay, preview, false, previewAlpha, false, &treeOrder)
		c.stats.PreviewDrawn = true
	}

	if c.debug {
		c.stats.EmitTime = time.Since(t0)
		t0 = time.Now()
	}

	c.mergeSort()

	if c.debug {
		c.stats.SortTime = time.Since(t0)
		t0 = time.Now()
	}

	dst.Clear()
	alpha := submitCommands(dst, c.commands, 1)
	alpha = submitCommands(dst, c.overlay, alpha)
	if alpha != 1 {
		dst.SetGlobalAlpha(1)
	}
	c.stats.Commands = len(c.commands) + len(c.overlay)

	if c.debug {
		c.stats.SubmitTime = time.Since(t0)
		c.debugLog()
	}
}

// emitShape appends the shadow, fill and border commands for one shape.
func (c *Compositor) emitShape(buf []RenderCommand, sh Shape, selected bool, alpha float64,
	withShadow bool, treeOrder *int) []RenderCommand {
	st := sh.Style()
	region := sh.Silhouette()
	layer := sh.Layer()

	if withShadow {
		if dx, dy, col, ok := shadowParams(st); ok {
			*treeOrder++
			buf = append(buf, RenderCommand{
				Type:      CommandShadow,
				Region:    region.Translate(dx, dy),
				Paint:     SolidPaint(col),
				Layer:     layer,
				Alpha:     alpha,
				Shape:     sh,
				treeOrder: *treeOrder,
			})
		}
	}

	*treeOrder++
	buf = append(buf, RenderCommand{
		Type:      CommandFill,
		Region:    region,
		Paint:     fillPaint(region, st),
		Layer:     layer,
		Alpha:     alpha,
		Shape:     sh,
		treeOrder: *treeOrder,
	})

	stroke := BorderColor
	dashes := DashPattern(st.Border)
	if selected {
		stroke = SelectionColor
		dashes = nil
	}
	*treeOrder++
	buf = append(buf, RenderCommand{
		Type:      CommandBorder,
		Region:    region,
		Stroke:    stroke,
		Width:     st.BorderWidth,
		Dashes:    dashes,
		Layer:     layer,
		Alpha:     alpha,
		Shape:     sh,
		treeOrder: *treeOrder,
	})
	return buf
}

// submitCommands replays commands onto dst, switching global alpha only when
// it changes. It returns the alpha left in effect.
func submitCommands(dst Surface, cmds []RenderCommand, alpha float64) float64 {
	for i := range cmds {
		cmd := &cmds[i]
		if cmd.Alpha != alpha {
			dst.SetGlobalAlpha(cmd.Alpha)
			alpha = cmd.Alpha
		}
		switch cmd.Type {
		case CommandShadow, CommandFill:
			dst.FillRegion(cmd.Region, cmd.Paint)
		case CommandBorder:
			dst.StrokeRegion(cmd.Region, cmd.Stroke, cmd.Width, cmd.Dashes)
		}
	}
	return alpha
}

// --- Draw order ---

// DrawOrder returns a copy of shapes stably sorted by ascending layer.
// Shapes on the same layer keep their relative order.
func DrawOrder(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	// Stable insertion sort: optimal for the usual nearly sorted input.
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && out[j].Layer() > key.Layer() {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b *RenderCommand) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts c.commands in-place using c.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (c *Compositor) mergeSort() {
	n := len(c.commands)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]RenderCommand, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.commands
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.commands, c.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
