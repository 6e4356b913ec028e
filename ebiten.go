package easel

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Tessellation defaults for EbitenSurface.
const (
	defaultEllipseSegments = 64
	defaultGradientRings   = 24
	maxEllipseSegments     = 4096
	strokeMiterLimit       = 10
)

// --- White source singleton (no sync.Once, drawing happens on the game goroutine) ---

var whiteSubImage *ebiten.Image

// whiteSource returns the lazily created source image for untextured
// triangles. The 1x1 interior of a 3x3 white image avoids sampling at the edge.
func whiteSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface draws onto an *ebiten.Image with triangle meshes. Gradients are
// per-vertex colors; radial gradients are concentric rings whose color ramp is
// shaped by Ease.
type EbitenSurface struct {
	// ClearColor fills the target on Clear. Defaults to white.
	ClearColor Color
	// Ease shapes gradient ramps. Defaults to ease.Linear.
	Ease ease.TweenFunc
	// Segments is the number of edges used to approximate an ellipse outline.
	Segments int
	// Rings is the number of concentric rings in a radial gradient mesh.
	Rings int
	// AntiAlias enables ebiten's triangle anti-aliasing.
	AntiAlias bool

	dst   *ebiten.Image
	alpha float64

	verts   []ebiten.Vertex
	inds    []uint16
	outline []Point
}

// NewEbitenSurface wraps dst. dst may be nil and set later with SetTarget.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		ClearColor: ColorWhite,
		Ease:       ease.Linear,
		Segments:   defaultEllipseSegments,
		Rings:      defaultGradientRings,
		AntiAlias:  true,
		dst:        dst,
		alpha:      1,
	}
}

// SetTarget points the surface at a new image, typically the screen of the
// current frame.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Target returns the current image.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.dst
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.ClearColor.toRGBA())
}

// SetGlobalAlpha implements Surface.
func (s *EbitenSurface) SetGlobalAlpha(alpha float64) {
	s.alpha = clamp01(alpha)
}

// FillRegion implements Surface.
func (s *EbitenSurface) FillRegion(r Region, p Paint) {
	if s.dst == nil || len(p.Stops) == 0 {
		return
	}
	s.outline = s.appendOutline(s.outline[:0], r)
	if len(s.outline) < 3 {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	switch p.Kind {
	case GradientRadial:
		s.appendRadialMesh(r, p)
	case GradientLinear:
		s.appendFanMesh(r, func(pt Point) Color {
			b := r.Bounds
			if b.Width == 0 {
				return p.ColorAt(0)
			}
			return p.ColorAt(s.ramp((pt.X - b.X) / b.Width))
		})
	default:
		c := p.ColorAt(0)
		s.appendFanMesh(r, func(Point) Color { return c })
	}
	s.dst.DrawTriangles(s.verts, s.inds, whiteSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
	})
}

// StrokeRegion implements Surface.
func (s *EbitenSurface) StrokeRegion(r Region, c Color, width float64, dashes []float64) {
	if s.dst == nil || width <= 0 {
		return
	}
	s.outline = s.appendOutline(s.outline[:0], r)
	if len(s.outline) < 2 {
		return
	}
	closed := append(s.outline, s.outline[0])

	var path vector.Path
	if isSolidDash(dashes) {
		path.MoveTo(float32(closed[0].X), float32(closed[0].Y))
		for _, pt := range closed[1 : len(closed)-1] {
			path.LineTo(float32(pt.X), float32(pt.Y))
		}
		path.Close()
	} else {
		for _, run := range DashPolyline(closed, dashes) {
			path.MoveTo(float32(run[0].X), float32(run[0].Y))
			for _, pt := range run[1:] {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
		}
	}

	verts, inds := path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], strokeOptions(width))
	for i := range verts {
		s.colorVertex(&verts[i], c)
	}
	s.verts, s.inds = verts, inds
	if len(inds) == 0 {
		return
	}
	s.dst.DrawTriangles(verts, inds, whiteSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
	})
}

// strokeOptions returns mitered, butt-capped stroke settings. The miter limit
// keeps right-angle corners sharp.
func strokeOptions(width float64) *vector.StrokeOptions {
	return &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		LineCap:    vector.LineCapButt,
		MiterLimit: strokeMiterLimit,
	}
}

// ramp applies Ease to t in [0, 1].
func (s *EbitenSurface) ramp(t float64) float64 {
	t = clamp01(t)
	if s.Ease == nil {
		return t
	}
	return clamp01(float64(s.Ease(float32(t), 0, 1, 1)))
}

// appendOutline samples the boundary of r clockwise from the top-left.
func (s *EbitenSurface) appendOutline(buf []Point, r Region) []Point {
	b := r.Bounds
	if r.Kind == RegionRect {
		return append(buf,
			Pt(b.X, b.Y),
			Pt(b.X+b.Width, b.Y),
			Pt(b.X+b.Width, b.Y+b.Height),
			Pt(b.X, b.Y+b.Height),
		)
	}
	n := s.Segments
	if n < 8 {
		n = defaultEllipseSegments
	}
	n = min(n, maxEllipseSegments)
	c := b.Center()
	rx, ry := b.Width/2, b.Height/2
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		buf = append(buf, Pt(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a)))
	}
	return buf
}

// appendFanMesh triangulates the outline as a fan around the region center,
// coloring each vertex with colorAt.
func (s *EbitenSurface) appendFanMesh(r Region, colorAt func(Point) Color) {
	c := r.Bounds.Center()
	s.verts = append(s.verts, s.vertex(c, colorAt(c)))
	for _, pt := range s.outline {
		s.verts = append(s.verts, s.vertex(pt, colorAt(pt)))
	}
	n := uint16(len(s.outline))
	for i := uint16(0); i < n; i++ {
		s.inds = append(s.inds, 0, 1+i, 1+(i+1)%n)
	}
}

// appendRadialMesh builds concentric rings from the center (offset 0) to the
// outline (offset 1).
func (s *EbitenSurface) appendRadialMesh(r Region, p Paint) {
	rings := s.Rings
	if rings < 1 {
		rings = defaultGradientRings
	}
	c := r.Bounds.Center()
	n := len(s.outline)
	if 1+rings*n > math.MaxUint16 {
		rings = (math.MaxUint16 - 1) / n
	}

	s.verts = append(s.verts, s.vertex(c, p.ColorAt(0)))
	for k := 1; k <= rings; k++ {
		t := float64(k) / float64(rings)
		col := p.ColorAt(s.ramp(t))
		for _, pt := range s.outline {
			q := Pt(c.X+(pt.X-c.X)*t, c.Y+(pt.Y-c.Y)*t)
			s.verts = append(s.verts, s.vertex(q, col))
		}
	}

	un := uint16(n)
	for i := uint16(0); i < un; i++ {
		s.inds = append(s.inds, 0, 1+i, 1+(i+1)%un)
	}
	for k := 1; k < rings; k++ {
		inner := uint16(1 + (k-1)*n)
		outer := uint16(1 + k*n)
		for i := uint16(0); i < un; i++ {
			j := (i + 1) % un
			s.inds = append(s.inds,
				inner+i, outer+i, outer+j,
				inner+i, outer+j, inner+j,
			)
		}
	}
}

func (s *EbitenSurface) vertex(p Point, c Color) ebiten.Vertex {
	v := ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)}
	s.colorVertex(&v, c)
	return v
}

// colorVertex writes a straight-alpha color scaled by the global alpha.
func (s *EbitenSurface) colorVertex(v *ebiten.Vertex, c Color) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A * s.alpha)
}

// --- Dashes ---

func isSolidDash(dashes []float64) bool {
	var total float64
	for _, d := range dashes {
		if d < 0 {
			return true
		}
		total += d
	}
	return total == 0
}

// DashPolyline splits an open polyline into the "on" runs of a dash pattern.
// Even indices of dashes are drawn, odd indices are gaps; an odd-length
// pattern repeats twice per cycle. A solid pattern returns the whole line.
func DashPolyline(pts []Point, dashes []float64) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	if isSolidDash(dashes) {
		out := make([]Point, len(pts))
		copy(out, pts)
		return [][]Point{out}
	}
	pattern := dashes
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), dashes...), dashes...)
	}

	var runs [][]Point
	cur := []Point{pts[0]}
	idx := 0
	left := pattern[0]
	on := true

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			t := pos / segLen
			q := Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			if on {
				cur = append(cur, q)
				runs = append(runs, cur)
				cur = nil
			} else {
				cur = []Point{q}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) >= 2 {
		runs = append(runs, cur)
	}
	return runs
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
