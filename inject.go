package easel

// syntheticPointerEvent represents a single injected pointer event in canvas
// coordinates, fed through the same path as real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update.
func (a *App) InjectPress(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (a *App) InjectRelease(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (a *App) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; the minimum is 2.
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		a.InjectMove(x, y)
	}
	a.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the queue and feeds it to the
// pointer state machine. It returns true if an event was consumed, in which
// case real mouse input is skipped for the frame.
func (a *App) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	a.processPointer(evt.x, evt.y, evt.pressed)
	return true
}

// processPointer turns the per-frame pressed flag into editor press, drag and
// release calls. A held pointer that has not moved does not drag.
func (a *App) processPointer(x, y float64, pressed bool) {
	p := Pt(x, y)
	ps := &a.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = p
		a.editor.PointerDown(p)
	case pressed && ps.down:
		if p == ps.last {
			return
		}
		ps.last = p
		a.editor.PointerDrag(p)
	case !pressed && ps.down:
		ps.down = false
		if p != ps.last {
			a.editor.PointerDrag(p)
		}
		ps.last = p
		a.editor.PointerUp(p)
	}
}
