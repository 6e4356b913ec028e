package easel

import (
	"strings"

	"github.com/google/uuid"
)

// Shape is the drawable element of a scene. Every variant honors the same
// geometric contract; style, tags and layer are shared state.
//
// Shapes have reference identity: two shapes with identical geometry and style
// are still different shapes. Geometry changes only through Move and
// MoveToCenter; style changes only through the explicit setters.
type Shape interface {
	// ID is a random identifier for logs and events. It plays no part in
	// equality.
	ID() uuid.UUID
	Kind() ShapeKind

	Contains(p Point) bool
	Move(dx, dy float64)
	Center() Point
	MoveToCenter(canvasWidth, canvasHeight float64)
	Bounds() Rect
	Silhouette() Region

	// DeepCopy returns an independent shape with the same geometry and a
	// default style, layer and tag set.
	DeepCopy() Shape
	// Duplicate returns a shape translated by (offsetX, offsetY) carrying the
	// receiver's style and layer but no tags.
	Duplicate(offsetX, offsetY float64) Shape
	// Divide splits the shape into two half-size shapes concentric with the
	// receiver. Both carry the receiver's style and layer.
	Divide() [2]Shape

	Style() Style
	SetStyle(st Style)
	SetFillColors(primary, secondary Color)
	SetShadow(k ShadowKind)
	SetBorder(k BorderKind)
	SetBorderWidth(w float64)
	Layer() int
	SetLayer(id int)

	AddTag(tag string)
	HasTag(tag string) bool
	ReplaceTags(tags []string)
	Tags() []string
	TagsString() string

	String() string
}

// shapeBase carries the state every variant shares. Variants embed it and
// supply the geometry half of the Shape contract.
type shapeBase struct {
	id    uuid.UUID
	style Style
	layer int
	tags  tagSet
}

func newShapeBase() shapeBase {
	return shapeBase{id: uuid.New(), style: DefaultStyle()}
}

// styledLike returns a fresh base carrying src's style and layer.
func styledLike(src *shapeBase) shapeBase {
	b := newShapeBase()
	b.style = src.style
	b.layer = src.layer
	return b
}

func (b *shapeBase) ID() uuid.UUID { return b.id }

func (b *shapeBase) Style() Style { return b.style }

func (b *shapeBase) SetStyle(st Style) {
	st.BorderWidth = sanitizeWidth(st.BorderWidth)
	b.style = st
}

func (b *shapeBase) SetFillColors(primary, secondary Color) {
	b.style.FillPrimary = primary
	b.style.FillSecondary = secondary
}

func (b *shapeBase) SetShadow(k ShadowKind) { b.style.Shadow = k }

func (b *shapeBase) SetBorder(k BorderKind) { b.style.Border = k }

// SetBorderWidth sets the stroke width. Negative and NaN widths become 0.
func (b *shapeBase) SetBorderWidth(w float64) { b.style.BorderWidth = sanitizeWidth(w) }

func (b *shapeBase) Layer() int { return b.layer }

func (b *shapeBase) SetLayer(id int) { b.layer = id }

// AddTag adds tag unless it is empty or already present.
func (b *shapeBase) AddTag(tag string) { b.tags.add(tag) }

// HasTag reports an exact match.
func (b *shapeBase) HasTag(tag string) bool { return b.tags.has(tag) }

// ReplaceTags swaps the whole tag set, dropping duplicates and empty strings.
func (b *shapeBase) ReplaceTags(tags []string) { b.tags.replace(tags) }

// Tags returns a copy of the tag set.
func (b *shapeBase) Tags() []string { return b.tags.clone() }

// TagsString joins the tags with single spaces, the form the tag editor shows.
func (b *shapeBase) TagsString() string { return strings.Join(b.tags, " ") }
