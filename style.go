package easel

import "math"

// DefaultBorderWidth is the stroke width of a freshly constructed shape.
const DefaultBorderWidth = 1.0

// Style is the value-typed visual state shared by every shape variant.
// It is copied wholesale; no field aliases another shape's state.
type Style struct {
	FillPrimary   Color
	FillSecondary Color
	Shadow        ShadowKind
	Border        BorderKind
	BorderWidth   float64
}

// DefaultStyle returns the style a shape carries before any setter runs.
func DefaultStyle() Style {
	return Style{
		FillPrimary:   ColorYellow,
		FillSecondary: ColorRed,
		Shadow:        ShadowNone,
		Border:        BorderSolid,
		BorderWidth:   DefaultBorderWidth,
	}
}

// CopyStyle returns the style of s. The result can be assigned to another
// shape with SetStyle.
func CopyStyle(s Shape) Style {
	return s.Style()
}

// sanitizeWidth clamps a border width to a finite, non-negative value.
func sanitizeWidth(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	if math.IsInf(w, 1) {
		return math.MaxFloat64
	}
	return w
}

// StyleProvider supplies the active tool settings at shape-construction time.
// The core only reads these values.
type StyleProvider interface {
	ActiveStyle() Style
	ActiveLayer() int
}

// ToolSettings is the default StyleProvider: a plain record of the style and
// layer new shapes receive.
type ToolSettings struct {
	Style Style
	Layer int
}

// DefaultToolSettings returns cyan-to-red fills, no shadow, a solid border of
// width 1 and layer 0.
func DefaultToolSettings() *ToolSettings {
	st := DefaultStyle()
	st.FillPrimary = ColorCyan
	return &ToolSettings{Style: st}
}

// ActiveStyle implements StyleProvider.
func (t *ToolSettings) ActiveStyle() Style {
	st := t.Style
	st.BorderWidth = sanitizeWidth(st.BorderWidth)
	return st
}

// ActiveLayer implements StyleProvider.
func (t *ToolSettings) ActiveLayer() int {
	return t.Layer
}

// applyActiveStyle stamps the provider's style and layer onto s.
func applyActiveStyle(s Shape, p StyleProvider) {
	if s == nil || p == nil {
		return
	}
	s.SetStyle(p.ActiveStyle())
	s.SetLayer(p.ActiveLayer())
}
