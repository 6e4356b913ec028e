package easel

import (
	"errors"
	"fmt"
	"sort"
)

// Layers 0, 1 and 2 always exist; dynamically added ids start here.
const (
	protectedLayerCount = 3
	firstDynamicLayer   = protectedLayerCount
)

var (
	// ErrProtectedLayer is returned when deleting one of the permanent layers.
	ErrProtectedLayer = errors.New("easel: layer is protected")
	// ErrUnknownLayer is returned when deleting an id the registry does not track.
	ErrUnknownLayer = errors.New("easel: unknown layer")
)

// LayerVisibility answers whether a layer id should be drawn. The compositor
// and the visibility filter depend only on this.
type LayerVisibility interface {
	IsVisible(id int) bool
}

// LayerRegistry tracks the known layer ids, their visibility flags and the
// layer new shapes are placed on. It does not own shapes.
type LayerRegistry struct {
	visible map[int]bool
	ids     []int
	current int
	nextID  int
}

// NewLayerRegistry creates a registry holding the permanent layers 0, 1 and 2,
// all visible, with layer 0 current.
func NewLayerRegistry() *LayerRegistry {
	r := &LayerRegistry{
		visible: make(map[int]bool, protectedLayerCount),
		nextID:  firstDynamicLayer,
	}
	for id := 0; id < protectedLayerCount; id++ {
		r.ids = append(r.ids, id)
		r.visible[id] = true
	}
	return r
}

// Current returns the layer new shapes are placed on.
func (r *LayerRegistry) Current() int {
	return r.current
}

// SetCurrent selects the layer new shapes are placed on.
func (r *LayerRegistry) SetCurrent(id int) {
	r.current = id
}

// IsVisible returns the stored flag, or true for an id the registry does not
// know. Unknown layers fail open so shapes never vanish over bookkeeping gaps.
func (r *LayerRegistry) IsVisible(id int) bool {
	v, ok := r.visible[id]
	if !ok {
		return true
	}
	return v
}

// SetVisible stores the visibility flag for id.
func (r *LayerRegistry) SetVisible(id int, visible bool) {
	if _, ok := r.visible[id]; !ok {
		return
	}
	r.visible[id] = visible
}

// AddLayer allocates the next layer id, visible by default. Ids are never reused.
func (r *LayerRegistry) AddLayer() int {
	id := r.nextID
	r.nextID++
	r.ids = append(r.ids, id)
	r.visible[id] = true
	return id
}

// IsProtected reports whether id is one of the permanent layers.
func IsProtected(id int) bool {
	return id >= 0 && id < protectedLayerCount
}

// DeleteLayer forgets id. The permanent layers are rejected with
// ErrProtectedLayer. Callers remove the layer's shapes from the scene before
// calling this. If id was current, layer 0 becomes current.
func (r *LayerRegistry) DeleteLayer(id int) error {
	if IsProtected(id) {
		return fmt.Errorf("delete layer %d: %w", id, ErrProtectedLayer)
	}
	if _, ok := r.visible[id]; !ok {
		return fmt.Errorf("delete layer %d: %w", id, ErrUnknownLayer)
	}
	delete(r.visible, id)
	for i, v := range r.ids {
		if v == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	if r.current == id {
		r.current = 0
	}
	return nil
}

// Known reports whether id is tracked.
func (r *LayerRegistry) Known(id int) bool {
	_, ok := r.visible[id]
	return ok
}

// Layers returns the known ids in ascending order.
func (r *LayerRegistry) Layers() []int {
	out := make([]int, len(r.ids))
	copy(out, r.ids)
	sort.Ints(out)
	return out
}
