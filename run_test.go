package easel

import "testing"

func TestRunConfigDefaults(t *testing.T) {
	a := newTestApp()
	if w, h := a.Layout(0, 0); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}
	if w, h := a.Editor().CanvasSize(); w != 800 || h != 600 {
		t.Errorf("canvas = %vx%v, want 800x600", w, h)
	}
	if a.cfg.Title != "easel" {
		t.Errorf("Title = %q", a.cfg.Title)
	}
}

func TestAppStatusFade(t *testing.T) {
	var forwarded []string
	ed := NewEditor(EditorConfig{})
	ed.OnStatus = func(msg string) { forwarded = append(forwarded, msg) }
	a := NewApp(ed, RunConfig{ShowStatus: true})

	drawShape(ed, Pt(10, 10), Pt(50, 40))
	ed.SelectAt(Pt(20, 20))
	ed.HandleKey(KeyEscape)

	msg, alpha := a.Status()
	if msg != StatusSelectionCleared || alpha != 1 {
		t.Fatalf("Status = %q %v, want %q 1", msg, alpha, StatusSelectionCleared)
	}
	if len(forwarded) != 1 {
		t.Error("the previous OnStatus should still be called")
	}

	a.advanceStatus(1)
	if _, alpha = a.Status(); alpha != 1 {
		t.Errorf("alpha during hold = %v, want 1", alpha)
	}
	a.advanceStatus(1)
	if _, alpha = a.Status(); alpha <= 0 || alpha >= 1 {
		t.Errorf("alpha during fade = %v, want in (0,1)", alpha)
	}
	a.advanceStatus(1)
	if _, alpha = a.Status(); alpha != 0 {
		t.Errorf("alpha after fade = %v, want 0", alpha)
	}
	a.advanceStatus(1)
	if msg, _ := a.Status(); msg != StatusSelectionCleared {
		t.Error("message should be kept after fading")
	}
}
