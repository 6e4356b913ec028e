// Package ggsurface renders easel scenes with the gogpu/gg software
// rasterizer. It needs no window or GPU, which makes it the surface of choice
// for headless exports and pixel tests.
package ggsurface

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/phanxgames/easel"
)

// Surface implements easel.Surface over a *gg.Context.
//
// Global alpha is realized with gg layers: while alpha is below 1 every
// operation draws into a pushed layer that is composited on the next alpha
// change. Call Flush (or SetGlobalAlpha(1)) before reading pixels.
type Surface struct {
	// Background fills the canvas on Clear. Defaults to white.
	Background easel.Color

	dc      *gg.Context
	alpha   float64
	layered bool
	err     error
}

// New creates a surface backed by a fresh width x height context.
func New(width, height int) *Surface {
	return Wrap(gg.NewContext(width, height))
}

// Wrap adapts an existing context.
func Wrap(dc *gg.Context) *Surface {
	return &Surface{
		Background: easel.ColorWhite,
		dc:         dc,
		alpha:      1,
	}
}

// Context returns the underlying context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Err returns the first error a fill or stroke reported, if any.
func (s *Surface) Err() error { return s.err }

// Clear implements easel.Surface.
func (s *Surface) Clear() {
	s.Flush()
	s.dc.ClearWithColor(toRGBA(s.Background))
}

// SetGlobalAlpha implements easel.Surface.
func (s *Surface) SetGlobalAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	if alpha == s.alpha {
		return
	}
	s.Flush()
	s.alpha = alpha
	if alpha < 1 {
		s.dc.PushLayer(gg.BlendNormal, alpha)
		s.layered = true
	}
}

// Flush composites any open alpha layer onto the canvas. Later operations
// draw at full opacity until SetGlobalAlpha lowers it again.
func (s *Surface) Flush() {
	if !s.layered {
		return
	}
	s.dc.PopLayer()
	s.layered = false
	s.alpha = 1
}

// FillRegion implements easel.Surface.
func (s *Surface) FillRegion(r easel.Region, p easel.Paint) {
	if len(p.Stops) == 0 {
		return
	}
	s.dc.SetFillBrush(brushFor(r, p))
	s.tracePath(r)
	s.record(s.dc.Fill(), "fill")
}

// StrokeRegion implements easel.Surface.
func (s *Surface) StrokeRegion(r easel.Region, c easel.Color, width float64, dashes []float64) {
	if width <= 0 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(c)))
	s.dc.SetLineWidth(width)
	if len(dashes) > 0 {
		s.dc.SetDash(dashes...)
	} else {
		s.dc.ClearDash()
	}
	s.tracePath(r)
	s.record(s.dc.Stroke(), "stroke")
	s.dc.ClearDash()
}

func (s *Surface) tracePath(r easel.Region) {
	b := r.Bounds
	switch r.Kind {
	case easel.RegionEllipse:
		c := b.Center()
		s.dc.DrawEllipse(c.X, c.Y, b.Width/2, b.Height/2)
	default:
		s.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	}
}

func (s *Surface) record(err error, op string) {
	if err == nil {
		return
	}
	easel.Logger().Warn("ggsurface: draw failed", slog.String("op", op), slog.Any("err", err))
	if s.err == nil {
		s.err = fmt.Errorf("ggsurface %s: %w", op, err)
	}
}

// Image flushes pending layers and returns the rendered image.
func (s *Surface) Image() image.Image {
	s.Flush()
	return s.dc.Image()
}

// SavePNG flushes pending layers and writes the canvas to path.
func (s *Surface) SavePNG(path string) error {
	s.Flush()
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// EncodePNG flushes pending layers and writes the canvas as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	s.Flush()
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the context.
func (s *Surface) Close() error {
	s.Flush()
	return s.dc.Close()
}

// brushFor maps a paint onto a gg brush. Linear gradients run along the
// horizontal axis of the region, radial ones from its center to the larger
// semi-axis.
func brushFor(r easel.Region, p easel.Paint) gg.Brush {
	b := r.Bounds
	switch p.Kind {
	case easel.GradientLinear:
		g := gg.NewLinearGradientBrush(b.X, b.Y, b.X+b.Width, b.Y)
		for _, st := range p.Stops {
			g.AddColorStop(st.Offset, toRGBA(st.Color))
		}
		return g
	case easel.GradientRadial:
		c := b.Center()
		g := gg.NewRadialGradientBrush(c.X, c.Y, 0, max(b.Width, b.Height)/2)
		for _, st := range p.Stops {
			g.AddColorStop(st.Offset, toRGBA(st.Color))
		}
		return g
	default:
		return gg.Solid(toRGBA(p.ColorAt(0)))
	}
}

func toRGBA(c easel.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
