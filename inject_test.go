package easel

import "testing"

func newTestApp() *App {
	return NewApp(NewEditor(EditorConfig{}), RunConfig{})
}

func drain(a *App) int {
	n := 0
	for a.processInjectedInput() {
		n++
	}
	return n
}

func TestInjectClick(t *testing.T) {
	a := newTestApp()
	a.InjectClick(50, 50)
	if len(a.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(a.injectQueue))
	}

	// Frame 1: press
	a.processInjectedInput()
	if !a.pointer.down {
		t.Error("pointer should be down after the press frame")
	}
	if _, ok := a.editor.Controller().Anchor(); !ok {
		t.Error("controller should hold an anchor")
	}

	// Frame 2: release
	a.processInjectedInput()
	if a.pointer.down {
		t.Error("pointer should be up after the release frame")
	}
	if a.editor.Scene().Len() != 0 {
		t.Error("a click should not draw a shape")
	}
}

func TestInjectDrag(t *testing.T) {
	a := newTestApp()
	a.InjectDrag(10, 10, 50, 40, 5)
	if len(a.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(a.injectQueue))
	}

	a.processInjectedInput()
	a.processInjectedInput()
	if a.editor.Preview() == nil {
		t.Error("expected a preview mid-drag")
	}
	if n := drain(a); n != 3 {
		t.Errorf("drained %d events, want 3", n)
	}

	shapes := a.editor.Scene().Snapshot()
	if len(shapes) != 1 {
		t.Fatalf("scene has %d shapes, want 1", len(shapes))
	}
	r := shapes[0].(*Rectangle)
	if r.TopLeft() != Pt(10, 10) || r.BottomRight() != Pt(50, 40) {
		t.Errorf("rectangle = %v", r)
	}
	if a.editor.Preview() != nil {
		t.Error("preview should be cleared after release")
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	a := newTestApp()
	a.InjectDrag(0, 0, 100, 100, 1)
	if len(a.injectQueue) != 2 {
		t.Errorf("expected 2 events (minimum), got %d", len(a.injectQueue))
	}
	drain(a)
	if a.editor.Scene().Len() != 1 {
		t.Error("a two-frame drag should still draw")
	}
}

func TestInjectQueueOrder(t *testing.T) {
	a := newTestApp()
	a.InjectPress(10, 20)
	a.InjectMove(30, 40)
	a.InjectRelease(50, 60)

	want := []syntheticPointerEvent{
		{10, 20, true},
		{30, 40, true},
		{50, 60, false},
	}
	if len(a.injectQueue) != len(want) {
		t.Fatalf("queue len = %d, want %d", len(a.injectQueue), len(want))
	}
	for i, w := range want {
		if a.injectQueue[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, a.injectQueue[i], w)
		}
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	a := newTestApp()
	if a.processInjectedInput() {
		t.Error("empty queue should not consume an event")
	}
}

func TestProcessPointer_MoveSelected(t *testing.T) {
	a := newTestApp()
	a.InjectDrag(10, 10, 50, 40, 2)
	drain(a)
	sh := a.editor.Scene().Snapshot()[0]

	a.editor.SetSelectionMode(true)
	a.InjectDrag(20, 20, 30, 30, 2)
	drain(a)
	if a.editor.Selected() != sh {
		t.Fatal("drag start inside the shape should select it")
	}
	if got := sh.Center(); got != Pt(40, 35) {
		t.Errorf("center = %v, want (40,35)", got)
	}
	if a.editor.Scene().Len() != 1 {
		t.Error("moving must not add shapes")
	}
}

func TestProcessPointer_HeldWithoutMotion(t *testing.T) {
	a := newTestApp()
	a.processPointer(10, 10, true)
	a.processPointer(10, 10, true)
	if a.editor.Preview() != nil {
		t.Error("a held pointer that did not move should not preview")
	}
	a.processPointer(10, 10, false)
	if a.editor.Scene().Len() != 0 {
		t.Error("no shape expected")
	}
}
