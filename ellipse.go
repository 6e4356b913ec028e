package easel

import (
	"fmt"
	"math"
)

// oval is the center and semi-axes behind Ellipse and Circle.
// Invariant: both semi-axes are non-negative.
type oval struct {
	center       Point
	semiX, semiY float64
}

func newOval(c Point, semiX, semiY float64) oval {
	return oval{center: c, semiX: math.Abs(semiX), semiY: math.Abs(semiY)}
}

// contains applies the normalized-distance test; the boundary is inside.
func (o *oval) contains(p Point) bool {
	nx := (p.X - o.center.X) / o.semiX
	ny := (p.Y - o.center.Y) / o.semiY
	return nx*nx+ny*ny <= 1
}

func (o *oval) move(dx, dy float64) {
	o.center = o.center.Add(dx, dy)
}

func (o *oval) bounds() Rect {
	return Rect{
		X:      o.center.X - o.semiX,
		Y:      o.center.Y - o.semiY,
		Width:  2 * o.semiX,
		Height: 2 * o.semiY,
	}
}

// --- Ellipse ---

// Ellipse is an axis-aligned ellipse stored as a center and two semi-axes.
type Ellipse struct {
	shapeBase
	oval
}

// NewEllipse creates an ellipse with semi-axis semiX along x and semiY along y.
func NewEllipse(center Point, semiX, semiY float64) *Ellipse {
	return &Ellipse{shapeBase: newShapeBase(), oval: newOval(center, semiX, semiY)}
}

func (e *Ellipse) Kind() ShapeKind { return KindEllipse }

// SemiAxes returns the semi-axis lengths along x and y.
func (e *Ellipse) SemiAxes() (x, y float64) { return e.semiX, e.semiY }

// Axes returns the full axis lengths (twice the semi-axes).
func (e *Ellipse) Axes() (x, y float64) { return 2 * e.semiX, 2 * e.semiY }

// Contains reports whether p lies inside or on the ellipse.
func (e *Ellipse) Contains(p Point) bool { return e.contains(p) }

func (e *Ellipse) Move(dx, dy float64) { e.move(dx, dy) }

func (e *Ellipse) Center() Point { return e.center }

func (e *Ellipse) MoveToCenter(canvasWidth, canvasHeight float64) {
	e.center = Point{X: canvasWidth / 2, Y: canvasHeight / 2}
}

func (e *Ellipse) Bounds() Rect { return e.bounds() }

func (e *Ellipse) Silhouette() Region {
	return Region{Kind: RegionEllipse, Bounds: e.bounds()}
}

func (e *Ellipse) DeepCopy() Shape {
	return &Ellipse{shapeBase: newShapeBase(), oval: e.oval}
}

func (e *Ellipse) Duplicate(offsetX, offsetY float64) Shape {
	o := e.oval
	o.move(offsetX, offsetY)
	return &Ellipse{shapeBase: styledLike(&e.shapeBase), oval: o}
}

// Divide returns two ellipses with half of each semi-axis, both centered on
// the receiver's center. The halves overlap completely.
func (e *Ellipse) Divide() [2]Shape {
	half := newOval(e.center, e.semiX/2, e.semiY/2)
	return [2]Shape{
		&Ellipse{shapeBase: styledLike(&e.shapeBase), oval: half},
		&Ellipse{shapeBase: styledLike(&e.shapeBase), oval: half},
	}
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("Ellipse [center: %s, axes: %.2f x %.2f]", e.center, 2*e.semiX, 2*e.semiY)
}

// --- Circle ---

// Circle is an Ellipse whose semi-axes both equal the radius.
type Circle struct {
	shapeBase
	oval
}

// NewCircle creates a circle. A negative radius is treated as its magnitude.
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{shapeBase: newShapeBase(), oval: newOval(center, radius, radius)}
}

func (c *Circle) Kind() ShapeKind { return KindCircle }

func (c *Circle) Radius() float64 { return c.semiX }

// Diameter returns the full axis length, 2×radius.
func (c *Circle) Diameter() float64 { return 2 * c.semiX }

// Contains reports whether p is strictly closer to the center than the radius.
// Points exactly on the circumference are outside.
func (c *Circle) Contains(p Point) bool {
	return c.center.Distance(p) < c.semiX
}

func (c *Circle) Move(dx, dy float64) { c.move(dx, dy) }

func (c *Circle) Center() Point { return c.center }

func (c *Circle) MoveToCenter(canvasWidth, canvasHeight float64) {
	c.center = Point{X: canvasWidth / 2, Y: canvasHeight / 2}
}

func (c *Circle) Bounds() Rect { return c.bounds() }

func (c *Circle) Silhouette() Region {
	return Region{Kind: RegionEllipse, Bounds: c.bounds()}
}

func (c *Circle) DeepCopy() Shape {
	return &Circle{shapeBase: newShapeBase(), oval: c.oval}
}

func (c *Circle) Duplicate(offsetX, offsetY float64) Shape {
	o := c.oval
	o.move(offsetX, offsetY)
	return &Circle{shapeBase: styledLike(&c.shapeBase), oval: o}
}

// Divide returns two circles of half the radius sharing the receiver's center.
func (c *Circle) Divide() [2]Shape {
	half := newOval(c.center, c.semiX/2, c.semiX/2)
	return [2]Shape{
		&Circle{shapeBase: styledLike(&c.shapeBase), oval: half},
		&Circle{shapeBase: styledLike(&c.shapeBase), oval: half},
	}
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle [center: %s, diameter: %.2f]", c.center, 2*c.semiX)
}
