// Package ecs provides ECS adapters for easel's editor events.
//
// [NewDonburiStore] bridges editor events (shape created, deleted, selected,
// moved, restyled and layer changes) into a [Donburi] world as typed events.
// Subscribe to [EditorEventType] in your ECS systems to receive them.
//
// [NewDonburiMirror] additionally keeps one entity per live shape, carrying a
// [ShapeInfo] component, so systems can query the drawing directly.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	editor.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
