package easel

// IsShapeVisible decides whether shape may be drawn this pass.
//
// A hidden layer always wins. In TagModeAll every remaining shape is
// visible; in TagModeSolo the shape must carry the first whitespace-separated
// token of filterText, and blank filter text hides everything. A nil layers
// argument treats every layer as visible.
func IsShapeVisible(shape Shape, layers LayerVisibility, mode TagMode, filterText string) bool {
	if shape == nil {
		return false
	}
	if layers != nil && !layers.IsVisible(shape.Layer()) {
		return false
	}
	if mode != TagModeSolo {
		return true
	}
	tag := soloTag(filterText)
	if tag == "" {
		return false
	}
	return shape.HasTag(tag)
}
