package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// EditorEventType is the Donburi event type for easel editor events.
var EditorEventType = events.NewEventType[easel.Event]()

// ShapeInfo is the component a mirror attaches to each shape entity.
type ShapeInfo struct {
	ID       uuid.UUID
	Kind     easel.ShapeKind
	Layer    int
	X, Y     float64 // center
	Selected bool
}

// ShapeComponent holds the ShapeInfo of a mirrored shape.
var ShapeComponent = donburi.NewComponentType[ShapeInfo]()

// ShapeQuery matches every mirrored shape entity.
var ShapeQuery = donburi.NewQuery(filter.Contains(ShapeComponent))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Editor
// events are published to EditorEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event easel.Event) {
	EditorEventType.Publish(s.world, event)
}

// Mirror is an EventStore that publishes events like NewDonburiStore and
// also maintains one entity per live shape.
type Mirror struct {
	world    donburi.World
	entities map[uuid.UUID]donburi.Entity
	selected uuid.UUID
}

// NewDonburiMirror creates a Mirror over world.
func NewDonburiMirror(world donburi.World) *Mirror {
	return &Mirror{world: world, entities: make(map[uuid.UUID]donburi.Entity)}
}

// EmitEvent implements easel.EventStore.
func (m *Mirror) EmitEvent(event easel.Event) {
	switch event.Type {
	case easel.EventShapeCreated:
		ent := m.world.Create(ShapeComponent)
		ShapeComponent.SetValue(m.world.Entry(ent), infoFrom(event))
		m.entities[event.ShapeID] = ent
	case easel.EventShapeDeleted:
		if ent, ok := m.entities[event.ShapeID]; ok {
			m.world.Remove(ent)
			delete(m.entities, event.ShapeID)
		}
		if m.selected == event.ShapeID {
			m.selected = uuid.Nil
		}
	case easel.EventShapeMoved, easel.EventShapeRestyled:
		if info := m.info(event.ShapeID); info != nil {
			info.Layer = event.Layer
			info.X, info.Y = event.X, event.Y
		}
	case easel.EventShapeSelected:
		if info := m.info(m.selected); info != nil {
			info.Selected = false
		}
		m.selected = event.ShapeID
		if info := m.info(event.ShapeID); info != nil {
			info.Selected = true
		}
	}
	EditorEventType.Publish(m.world, event)
}

// Entity returns the entity mirroring shape id.
func (m *Mirror) Entity(id uuid.UUID) (donburi.Entity, bool) {
	ent, ok := m.entities[id]
	return ent, ok
}

// Len returns the number of mirrored shapes.
func (m *Mirror) Len() int {
	return ShapeQuery.Count(m.world)
}

func (m *Mirror) info(id uuid.UUID) *ShapeInfo {
	if id == uuid.Nil {
		return nil
	}
	ent, ok := m.entities[id]
	if !ok || !m.world.Valid(ent) {
		return nil
	}
	return ShapeComponent.Get(m.world.Entry(ent))
}

func infoFrom(e easel.Event) ShapeInfo {
	return ShapeInfo{ID: e.ShapeID, Kind: e.Kind, Layer: e.Layer, X: e.X, Y: e.Y}
}
