package easel

import "testing"

func TestIsShapeVisible(t *testing.T) {
	layers := NewLayerRegistry()
	layers.SetVisible(2, false)

	tagged := NewRectangle(Pt(0, 0), Pt(1, 1))
	tagged.AddTag("red")
	plain := NewRectangle(Pt(0, 0), Pt(1, 1))
	hidden := NewRectangle(Pt(0, 0), Pt(1, 1))
	hidden.AddTag("red")
	hidden.SetLayer(2)

	tests := []struct {
		name   string
		shape  Shape
		mode   TagMode
		filter string
		want   bool
	}{
		{"all mode plain", plain, TagModeAll, "", true},
		{"all mode ignores filter", plain, TagModeAll, "red", true},
		{"solo match", tagged, TagModeSolo, "red", true},
		{"solo first token", tagged, TagModeSolo, "  red blue", true},
		{"solo second token ignored", tagged, TagModeSolo, "blue red", false},
		{"solo miss", plain, TagModeSolo, "red", false},
		{"solo blank filter", tagged, TagModeSolo, "   ", false},
		{"solo case sensitive", tagged, TagModeSolo, "Red", false},
		{"hidden layer all", hidden, TagModeAll, "", false},
		{"hidden layer solo", hidden, TagModeSolo, "red", false},
		{"nil shape", nil, TagModeAll, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsShapeVisible(tt.shape, layers, tt.mode, tt.filter); got != tt.want {
				t.Errorf("IsShapeVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsShapeVisibleNilLayers(t *testing.T) {
	sh := NewCircle(Pt(0, 0), 1)
	sh.SetLayer(9)
	if !IsShapeVisible(sh, nil, TagModeAll, "") {
		t.Error("nil layers should treat every layer as visible")
	}
}
