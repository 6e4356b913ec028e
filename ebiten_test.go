package easel

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

func TestDashPolylineSimple(t *testing.T) {
	runs := DashPolyline([]Point{Pt(0, 0), Pt(100, 0)}, []float64{10})
	if len(runs) != 5 {
		t.Fatalf("runs = %d, want 5", len(runs))
	}
	for i, run := range runs {
		start := float64(i * 20)
		if len(run) != 2 || run[0] != Pt(start, 0) || run[1] != Pt(start+10, 0) {
			t.Errorf("run %d = %v, want (%v,0)-(%v,0)", i, run, start, start+10)
		}
	}
}

func TestDashPolylineAcrossCorner(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	runs := DashPolyline(pts, []float64{15, 5})
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 5)}
	if len(runs[0]) != len(want) {
		t.Fatalf("run = %v, want %v", runs[0], want)
	}
	for i := range want {
		if runs[0][i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, runs[0][i], want[i])
		}
	}
}

func TestDashPolylineComplexPattern(t *testing.T) {
	runs := DashPolyline([]Point{Pt(0, 0), Pt(130, 0)}, DashPattern(BorderDottedComplex))
	// 30 on, 10 off, 15 on, 10 off, repeated.
	wantStarts := []float64{0, 40, 65, 105}
	wantEnds := []float64{30, 55, 95, 120}
	if len(runs) != len(wantStarts) {
		t.Fatalf("runs = %v", runs)
	}
	for i, run := range runs {
		start, end := run[0].X, run[len(run)-1].X
		if math.Abs(start-wantStarts[i]) > 1e-9 || math.Abs(end-wantEnds[i]) > 1e-9 {
			t.Errorf("run %d spans %v..%v, want %v..%v", i, start, end, wantStarts[i], wantEnds[i])
		}
	}
}

func TestDashPolylineSolid(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)}
	for _, dashes := range [][]float64{nil, {}, {0, 0}} {
		runs := DashPolyline(pts, dashes)
		if len(runs) != 1 || len(runs[0]) != 3 {
			t.Errorf("DashPolyline(%v) = %v, want the whole line", dashes, runs)
		}
	}
	runs := DashPolyline(pts, nil)
	runs[0][0] = Pt(99, 99)
	if pts[0] != Pt(0, 0) {
		t.Error("solid result must not alias the input")
	}
	if DashPolyline(pts[:1], []float64{5}) != nil {
		t.Error("a single point has no runs")
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
		{Color{1, 1, 1, 0}, color.RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%+v.toRGBA() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEbitenSurfaceOutline(t *testing.T) {
	s := NewEbitenSurface(nil)
	rect := s.appendOutline(nil, Region{Kind: RegionRect, Bounds: Rect{X: 10, Y: 20, Width: 30, Height: 40}})
	want := []Point{Pt(10, 20), Pt(40, 20), Pt(40, 60), Pt(10, 60)}
	if len(rect) != 4 {
		t.Fatalf("rect outline = %v", rect)
	}
	for i := range want {
		if rect[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, rect[i], want[i])
		}
	}

	s.Segments = 16
	ell := s.appendOutline(nil, Region{Kind: RegionEllipse, Bounds: Rect{X: 0, Y: 0, Width: 40, Height: 20}})
	if len(ell) != 16 {
		t.Fatalf("ellipse outline has %d points, want 16", len(ell))
	}
	for _, p := range ell {
		v := (p.X-20)*(p.X-20)/400 + (p.Y-10)*(p.Y-10)/100
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("%v is off the ellipse (%v)", p, v)
		}
	}
}

func TestEbitenSurfaceSegmentsCapped(t *testing.T) {
	s := NewEbitenSurface(nil)
	s.Segments = 100000
	r := Region{Kind: RegionEllipse, Bounds: Rect{Width: 200, Height: 100}}
	s.outline = s.appendOutline(s.outline[:0], r)
	if len(s.outline) != maxEllipseSegments {
		t.Fatalf("outline has %d points, want %d", len(s.outline), maxEllipseSegments)
	}

	s.appendRadialMesh(r, GradientPaint(GradientRadial, ColorRed, ColorCyan))
	if len(s.verts) <= 1+len(s.outline) {
		t.Fatalf("radial mesh has %d vertices, want at least two rings", len(s.verts))
	}
	for i, idx := range s.inds {
		if int(idx) >= len(s.verts) {
			t.Fatalf("index %d = %d, out of range of %d vertices", i, idx, len(s.verts))
		}
	}
}

func TestStrokeOptionsMiterLimit(t *testing.T) {
	op := strokeOptions(3)
	if op.Width != 3 || op.LineJoin != vector.LineJoinMiter {
		t.Errorf("options = %+v", op)
	}
	// A right angle needs a miter ratio of sqrt(2).
	if op.MiterLimit < math.Sqrt2 {
		t.Errorf("MiterLimit = %v, corners would be bevelled", op.MiterLimit)
	}
}

func TestEbitenSurfaceRamp(t *testing.T) {
	s := NewEbitenSurface(nil)
	if got := s.ramp(0.25); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("linear ramp(0.25) = %v", got)
	}
	if s.ramp(-1) != 0 || s.ramp(2) != 1 {
		t.Error("ramp should clamp to [0,1]")
	}
	s.Ease = ease.InQuad
	if got := s.ramp(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("InQuad ramp(0.5) = %v, want 0.25", got)
	}
}

func TestEbitenSurfaceAlpha(t *testing.T) {
	s := NewEbitenSurface(nil)
	s.SetGlobalAlpha(0.5)
	v := s.vertex(Pt(1, 2), Color{1, 0.5, 0, 0.8})
	if v.ColorA != 0.4 || v.ColorR != 1 || v.ColorG != 0.5 {
		t.Errorf("vertex color = %v %v %v %v", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
	if v.SrcX != 1 || v.SrcY != 1 || v.DstX != 1 || v.DstY != 2 {
		t.Errorf("vertex = %+v", v)
	}
	s.SetGlobalAlpha(3)
	if s.alpha != 1 {
		t.Errorf("alpha = %v, want clamped to 1", s.alpha)
	}
}

func TestEbitenSurfaceNilTarget(t *testing.T) {
	s := NewEbitenSurface(nil)
	r := Region{Kind: RegionEllipse, Bounds: Rect{Width: 10, Height: 10}}
	s.Clear()
	s.FillRegion(r, SolidPaint(ColorRed))
	s.StrokeRegion(r, ColorBlack, 2, nil)
	if s.Target() != nil {
		t.Error("target should stay nil")
	}
}
