// Package easel is the core of an interactive vector-drawing editor for
// [Ebitengine].
//
// Easel provides the shape model, a layered scene store, tag filtering, a
// compositor that turns a scene into ordered surface calls, and a pointer
// controller that builds, previews, selects and moves shapes.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// an [Editor] from mouse and keyboard input:
//
//	editor := easel.NewEditor(easel.EditorConfig{})
//	editor.SetTool(easel.ToolEllipse)
//	easel.Run(editor, easel.RunConfig{
//		Title: "Paint", Width: 800, Height: 600,
//	})
//
// For full control, call the editor's pointer methods from your own
// [ebiten.Game] and render with an [EbitenSurface]:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.surface.SetTarget(screen)
//		g.editor.Render(g.surface)
//	}
//
// # Shapes
//
// Every drawable element is a [Shape]: [Rectangle], [Square], [Ellipse] or
// [Circle]. Shapes share a value-typed [Style] (two fill colors, a
// [ShadowKind], a [BorderKind] and a border width), a tag set and a layer id.
// Shapes have reference identity; geometry changes only through Move and
// MoveToCenter.
//
// # Layers and tags
//
// A [LayerRegistry] tracks layer ids and their visibility. Layers 0, 1 and 2
// always exist; [LayerRegistry.AddLayer] hands out ids from 3 upward and never
// reuses them. [IsShapeVisible] combines layer visibility with the tag filter:
// in [TagModeSolo] only shapes carrying the filter tag are drawn.
//
// # Rendering
//
// [Compositor.Render] draws through the [Surface] interface. Shapes are drawn
// bottom layer first and in insertion order within a layer; each one draws its
// shadow, gradient fill and border in that order, and the preview of an
// in-progress drag is drawn last at half opacity. Two surfaces are provided:
// [EbitenSurface] for the window, and the ggsurface sub-package, a software
// rasterizer built on gogpu/gg for headless output.
//
// # Automated runs
//
// [App.InjectPress], [App.InjectDrag] and friends queue synthetic pointer
// input, and [LoadTestScript] replays a JSON script of input, tool changes,
// shortcuts and screenshots:
//
//	{"steps": [
//		{"action": "tool", "tool": "circle"},
//		{"action": "drag", "fromX": 200, "fromY": 200, "toX": 260, "toY": 200, "frames": 6},
//		{"action": "screenshot", "label": "circle"}
//	]}
//
// # Logging
//
// Easel is silent by default. Pass a [log/slog] logger to [SetLogger] to
// receive render stats and editor actions.
//
// # ECS integration
//
// Editor events can be published into a [Donburi] world with the adapter in
// easel/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package easel
