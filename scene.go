package easel

// Scene is the ordered store of live shapes. It exclusively owns its
// shapes: a shape belongs to at most one scene.
//
// The backing slice is never handed out. Readers iterate a Snapshot, so a
// render or hit test that triggers another mutation cannot observe a
// half-applied change.
type Scene struct {
	shapes []Shape
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{shapes: make([]Shape, 0, 64)}
}

// Add appends s. Insertion order is the draw order within a layer.
func (s *Scene) Add(shape Shape) {
	if shape == nil {
		return
	}
	s.shapes = append(s.shapes, shape)
}

// Remove deletes shape by identity and reports whether it was present.
// Removing an absent shape is a no-op.
func (s *Scene) Remove(shape Shape) bool {
	for i, sh := range s.shapes {
		if sh == shape {
			copy(s.shapes[i:], s.shapes[i+1:])
			s.shapes[len(s.shapes)-1] = nil
			s.shapes = s.shapes[:len(s.shapes)-1]
			return true
		}
	}
	return false
}

// RemoveLayer deletes every shape on the given layer and returns them in
// their former insertion order.
func (s *Scene) RemoveLayer(id int) []Shape {
	var removed []Shape
	kept := s.shapes[:0]
	for _, sh := range s.shapes {
		if sh.Layer() == id {
			removed = append(removed, sh)
			continue
		}
		kept = append(kept, sh)
	}
	for i := len(kept); i < len(s.shapes); i++ {
		s.shapes[i] = nil
	}
	s.shapes = kept
	return removed
}

// Snapshot returns a point-in-time copy of the shapes in insertion order.
func (s *Scene) Snapshot() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Contains reports whether shape is in the scene.
func (s *Scene) Contains(shape Shape) bool {
	for _, sh := range s.shapes {
		if sh == shape {
			return true
		}
	}
	return false
}
