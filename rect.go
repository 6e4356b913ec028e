package easel

import (
	"fmt"
	"math"
)

// box is the normalized corner pair behind Rectangle and Square.
// Invariant: topLeft.X <= bottomRight.X and topLeft.Y <= bottomRight.Y.
type box struct {
	topLeft, bottomRight Point
}

func normalizedBox(p1, p2 Point) box {
	return box{
		topLeft:     Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		bottomRight: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

func (b *box) width() float64  { return b.bottomRight.X - b.topLeft.X }
func (b *box) height() float64 { return b.bottomRight.Y - b.topLeft.Y }

// contains is an open-interval test: boundary points are outside.
func (b *box) contains(p Point) bool {
	return p.X > b.topLeft.X && p.X < b.bottomRight.X &&
		p.Y > b.topLeft.Y && p.Y < b.bottomRight.Y
}

func (b *box) move(dx, dy float64) {
	b.topLeft = b.topLeft.Add(dx, dy)
	b.bottomRight = b.bottomRight.Add(dx, dy)
}

func (b *box) center() Point {
	return b.topLeft.Midpoint(b.bottomRight)
}

// centeredAt returns a box of size w×h whose midpoint is c.
func centeredAt(c Point, w, h float64) box {
	return box{
		topLeft:     Point{X: c.X - w/2, Y: c.Y - h/2},
		bottomRight: Point{X: c.X + w/2, Y: c.Y + h/2},
	}
}

func (b *box) bounds() Rect {
	return Rect{X: b.topLeft.X, Y: b.topLeft.Y, Width: b.width(), Height: b.height()}
}

// --- Rectangle ---

// Rectangle is an axis-aligned box shape.
type Rectangle struct {
	shapeBase
	box
}

// NewRectangle creates a rectangle spanning the two corners in any order.
func NewRectangle(p1, p2 Point) *Rectangle {
	return &Rectangle{shapeBase: newShapeBase(), box: normalizedBox(p1, p2)}
}

func (r *Rectangle) Kind() ShapeKind { return KindRectangle }

// TopLeft returns the minimum corner.
func (r *Rectangle) TopLeft() Point { return r.topLeft }

// BottomRight returns the maximum corner.
func (r *Rectangle) BottomRight() Point { return r.bottomRight }

func (r *Rectangle) Width() float64  { return r.width() }
func (r *Rectangle) Height() float64 { return r.height() }

// Contains reports whether p lies strictly inside the rectangle.
func (r *Rectangle) Contains(p Point) bool { return r.contains(p) }

func (r *Rectangle) Move(dx, dy float64) { r.move(dx, dy) }

func (r *Rectangle) Center() Point { return r.center() }

func (r *Rectangle) MoveToCenter(canvasWidth, canvasHeight float64) {
	r.box = centeredAt(Point{X: canvasWidth / 2, Y: canvasHeight / 2}, r.width(), r.height())
}

func (r *Rectangle) Bounds() Rect { return r.bounds() }

func (r *Rectangle) Silhouette() Region {
	return Region{Kind: RegionRect, Bounds: r.bounds()}
}

func (r *Rectangle) DeepCopy() Shape {
	return &Rectangle{shapeBase: newShapeBase(), box: r.box}
}

func (r *Rectangle) Duplicate(offsetX, offsetY float64) Shape {
	b := r.box
	b.move(offsetX, offsetY)
	return &Rectangle{shapeBase: styledLike(&r.shapeBase), box: b}
}

// Divide returns two rectangles of half width and half height, both centered
// on the receiver's center.
func (r *Rectangle) Divide() [2]Shape {
	half := centeredAt(r.center(), r.width()/2, r.height()/2)
	return [2]Shape{
		&Rectangle{shapeBase: styledLike(&r.shapeBase), box: half},
		&Rectangle{shapeBase: styledLike(&r.shapeBase), box: half},
	}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle [%s, %s]", r.topLeft, r.bottomRight)
}

// --- Square ---

// Square is a Rectangle whose width always equals its height.
type Square struct {
	shapeBase
	box
}

// NewSquare creates a square with the given top-left corner and side length.
// A negative side extends up and to the left of topLeft.
func NewSquare(topLeft Point, side float64) *Square {
	return &Square{
		shapeBase: newShapeBase(),
		box:       normalizedBox(topLeft, topLeft.Add(side, side)),
	}
}

func (s *Square) Kind() ShapeKind { return KindSquare }

func (s *Square) TopLeft() Point     { return s.topLeft }
func (s *Square) BottomRight() Point { return s.bottomRight }

// Side returns the edge length.
func (s *Square) Side() float64 { return s.width() }

func (s *Square) Contains(p Point) bool { return s.contains(p) }

func (s *Square) Move(dx, dy float64) { s.move(dx, dy) }

func (s *Square) Center() Point { return s.center() }

func (s *Square) MoveToCenter(canvasWidth, canvasHeight float64) {
	side := s.width()
	s.box = centeredAt(Point{X: canvasWidth / 2, Y: canvasHeight / 2}, side, side)
}

func (s *Square) Bounds() Rect { return s.bounds() }

func (s *Square) Silhouette() Region {
	return Region{Kind: RegionRect, Bounds: s.bounds()}
}

func (s *Square) DeepCopy() Shape {
	return &Square{shapeBase: newShapeBase(), box: s.box}
}

func (s *Square) Duplicate(offsetX, offsetY float64) Shape {
	b := s.box
	b.move(offsetX, offsetY)
	return &Square{shapeBase: styledLike(&s.shapeBase), box: b}
}

// Divide returns two squares of half the side, both centered on the
// receiver's center.
func (s *Square) Divide() [2]Shape {
	side := s.width() / 2
	half := centeredAt(s.center(), side, side)
	return [2]Shape{
		&Square{shapeBase: styledLike(&s.shapeBase), box: half},
		&Square{shapeBase: styledLike(&s.shapeBase), box: half},
	}
}

func (s *Square) String() string {
	return fmt.Sprintf("Square [%s, %s]", s.topLeft, s.bottomRight)
}
