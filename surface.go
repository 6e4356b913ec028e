package easel

// RegionKind is the outline family of a silhouette.
type RegionKind uint8

const (
	RegionRect    RegionKind = iota // axis-aligned rectangle filling Bounds
	RegionEllipse                   // ellipse inscribed in Bounds
)

// Region is a fillable, strokable silhouette in canvas coordinates.
type Region struct {
	Kind   RegionKind
	Bounds Rect
}

// Translate returns the region moved by (dx, dy).
func (r Region) Translate(dx, dy float64) Region {
	r.Bounds = r.Bounds.Translate(dx, dy)
	return r
}

// GradientKind selects how a Paint's stops spread across a region.
type GradientKind uint8

const (
	GradientSolid  GradientKind = iota // first stop only
	GradientLinear                     // left edge to right edge of the region
	GradientRadial                     // region center outward to its edge
)

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Paint describes a region fill.
type Paint struct {
	Kind  GradientKind
	Stops []ColorStop
}

// SolidPaint fills with a single color.
func SolidPaint(c Color) Paint {
	return Paint{Kind: GradientSolid, Stops: []ColorStop{{Offset: 0, Color: c}}}
}

// GradientPaint runs from 'from' at offset 0 to 'to' at offset 1.
func GradientPaint(kind GradientKind, from, to Color) Paint {
	return Paint{Kind: kind, Stops: []ColorStop{{Offset: 0, Color: from}, {Offset: 1, Color: to}}}
}

// ColorAt interpolates the stops at t in [0, 1]. Offsets must be ascending.
func (p Paint) ColorAt(t float64) Color {
	if len(p.Stops) == 0 {
		return Color{}
	}
	if p.Kind == GradientSolid || t <= p.Stops[0].Offset {
		return p.Stops[0].Color
	}
	for i := 1; i < len(p.Stops); i++ {
		a, b := p.Stops[i-1], p.Stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return p.Stops[len(p.Stops)-1].Color
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Surface is the rendering collaborator the compositor draws through. It
// decides how pixels are produced; the compositor only decides what is drawn
// and in which order.
type Surface interface {
	// Clear erases the whole drawing area.
	Clear()
	// FillRegion paints the interior of r.
	FillRegion(r Region, p Paint)
	// StrokeRegion outlines r. An empty dash pattern strokes a solid line.
	StrokeRegion(r Region, c Color, width float64, dashes []float64)
	// SetGlobalAlpha scales the opacity of every subsequent operation.
	SetGlobalAlpha(alpha float64)
}
