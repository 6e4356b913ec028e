package easel

import (
	"math"
	"sort"
)

// ToolID names a drawing tool.
type ToolID string

// Built-in tool ids.
const (
	ToolRectangle ToolID = "rectangle"
	ToolSquare    ToolID = "square"
	ToolCircle    ToolID = "circle"
	ToolEllipse   ToolID = "ellipse"
)

// Strategy builds a shape from the press point a and the current point b.
// It returns false when the drag is degenerate; that is "nothing to add",
// never an error.
type Strategy func(a, b Point) (Shape, bool)

// Tools maps tool ids to construction strategies. The controller looks tools
// up here and never branches on shape variants itself.
type Tools map[ToolID]Strategy

// DefaultTools returns the strategies for the four built-in variants.
func DefaultTools() Tools {
	return Tools{
		ToolRectangle: BuildRectangle,
		ToolSquare:    BuildSquare,
		ToolCircle:    BuildCircle,
		ToolEllipse:   BuildEllipse,
	}
}

// Build runs the strategy for id. Unknown ids behave like a degenerate drag.
func (t Tools) Build(id ToolID, a, b Point) (Shape, bool) {
	fn, ok := t[id]
	if !ok || fn == nil {
		return nil, false
	}
	sh, ok := fn(a, b)
	if !ok || sh == nil {
		return nil, false
	}
	return sh, true
}

// IDs returns the registered tool ids in lexical order.
func (t Tools) IDs() []ToolID {
	out := make([]ToolID, 0, len(t))
	for id := range t {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildRectangle spans the box with corners a and b.
func BuildRectangle(a, b Point) (Shape, bool) {
	if a.X == b.X || a.Y == b.Y {
		return nil, false
	}
	return NewRectangle(a, b), true
}

// BuildSquare anchors a square at a, growing toward b. The side is the larger
// of the two drag extents.
func BuildSquare(a, b Point) (Shape, bool) {
	dx, dy := b.Sub(a)
	side := math.Max(math.Abs(dx), math.Abs(dy))
	if side == 0 {
		return nil, false
	}
	tl := a
	if dx < 0 {
		tl.X -= side
	}
	if dy < 0 {
		tl.Y -= side
	}
	return NewSquare(tl, side), true
}

// BuildCircle centers a circle on a with radius |ab|.
func BuildCircle(a, b Point) (Shape, bool) {
	r := a.Distance(b)
	if r == 0 {
		return nil, false
	}
	return NewCircle(a, r), true
}

// BuildEllipse inscribes an ellipse in the box with corners a and b.
func BuildEllipse(a, b Point) (Shape, bool) {
	dx, dy := b.Sub(a)
	if dx == 0 || dy == 0 {
		return nil, false
	}
	return NewEllipse(a.Midpoint(b), math.Abs(dx)/2, math.Abs(dy)/2), true
}
