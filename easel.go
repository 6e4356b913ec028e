package easel

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, when a surface needs it, happens at submission time.
type Color struct {
	R, G, B, A float64
}

// Palette entries used by the compositor and the default tool settings.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorGray   = Color{0.5, 0.5, 0.5, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorCyan   = Color{0, 1, 1, 1}
)

// darkerFactor matches the brightness step used for colored shadows.
const darkerFactor = 0.7

// Darker returns the color with its brightness scaled down, keeping hue,
// saturation and alpha.
func (c Color) Darker() Color {
	return Color{c.R * darkerFactor, c.G * darkerFactor, c.B * darkerFactor, c.A}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ShadowKind selects the drop shadow drawn under a shape.
type ShadowKind uint8

const (
	ShadowNone           ShadowKind = iota // no shadow pass
	ShadowSimple                           // gray, offset down-right
	ShadowColored                          // darker primary fill, offset down-right
	ShadowSimpleInverse                    // gray, offset up-left
	ShadowColoredInverse                   // darker primary fill, offset up-left
)

// String returns the shadow kind's label.
func (k ShadowKind) String() string {
	switch k {
	case ShadowNone:
		return "none"
	case ShadowSimple:
		return "simple"
	case ShadowColored:
		return "colored"
	case ShadowSimpleInverse:
		return "simple-inverse"
	case ShadowColoredInverse:
		return "colored-inverse"
	default:
		return "unknown"
	}
}

// BorderKind selects the dash pattern of a shape's border.
type BorderKind uint8

const (
	BorderSolid         BorderKind = iota // continuous stroke
	BorderDottedSimple                    // uniform short dashes
	BorderDottedComplex                   // alternating long/short dashes
)

// String returns the border kind's label.
func (k BorderKind) String() string {
	switch k {
	case BorderSolid:
		return "solid"
	case BorderDottedSimple:
		return "dotted-simple"
	case BorderDottedComplex:
		return "dotted-complex"
	default:
		return "unknown"
	}
}

// TagMode controls how the tag filter participates in visibility.
type TagMode uint8

const (
	TagModeAll  TagMode = iota // every shape on a visible layer is drawn
	TagModeSolo                // only shapes carrying the filter tag are drawn
)

// ShapeKind identifies the concrete variant behind a Shape.
type ShapeKind uint8

const (
	KindRectangle ShapeKind = iota
	KindSquare
	KindEllipse
	KindCircle
)

// String returns the variant name.
func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	case KindEllipse:
		return "ellipse"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of editor event.
type EventType uint8

const (
	EventShapeCreated  EventType = iota // a shape was committed to the scene
	EventShapeDeleted                   // a shape was removed from the scene
	EventShapeSelected                  // the selection changed (Shape may be nil)
	EventShapeMoved                     // the selected shape was dragged
	EventShapeRestyled                  // style or tags changed on the selection
	EventLayerAdded                     // a layer id was allocated
	EventLayerDeleted                   // a layer id was forgotten
)

// Key identifies the keyboard keys the editor reacts to.
type Key uint8

const (
	KeyDelete Key = iota
	KeyBackspace
	KeyEscape
)
