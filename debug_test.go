package easel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestCountAlphaSwitches(t *testing.T) {
	opaque := []RenderCommand{{Alpha: 1}, {Alpha: 1}}
	faded := []RenderCommand{{Alpha: 0.5}, {Alpha: 0.5}}
	tests := []struct {
		name string
		runs [][]RenderCommand
		want int
	}{
		{"none", nil, 0},
		{"opaque only", [][]RenderCommand{opaque}, 0},
		{"opaque then preview", [][]RenderCommand{opaque, faded}, 2},
		{"preview only", [][]RenderCommand{nil, faded}, 2},
		{"mixed", [][]RenderCommand{{{Alpha: 0.5}, {Alpha: 1}, {Alpha: 0.5}}}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countAlphaSwitches(tt.runs...); got != tt.want {
				t.Errorf("countAlphaSwitches = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountAlphaSwitchesMatchesRender(t *testing.T) {
	c := NewCompositor()
	dst := &recordingSurface{}
	c.Render(dst, []Shape{NewCircle(Pt(0, 0), 3)}, nil, NewSquare(Pt(10, 10), 5), TagModeAll, "", nil)
	if got, want := countAlphaSwitches(c.commands, c.overlay), len(dst.only("alpha")); got != want {
		t.Errorf("countAlphaSwitches = %d, surface saw %d", got, want)
	}
}

func TestDebugLogRenderPass(t *testing.T) {
	buf := captureLogs(t)
	c := NewCompositor()
	c.SetDebugMode(true)
	c.Render(&recordingSurface{}, []Shape{NewCircle(Pt(0, 0), 3)}, nil, nil, TagModeAll, "", nil)

	out := buf.String()
	if !strings.Contains(out, "render pass") {
		t.Fatalf("missing render pass log: %s", out)
	}
	for _, key := range []string{"shapes=1", "drawn=1", "commands=2"} {
		if !strings.Contains(out, key) {
			t.Errorf("log missing %q: %s", key, out)
		}
	}
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureLogs(t)
	c := NewCompositor()
	c.Render(&recordingSurface{}, []Shape{NewCircle(Pt(0, 0), 3)}, nil, nil, TagModeAll, "", nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output without debug mode, got %s", buf.String())
	}
	if st := c.Stats(); st.EmitTime != 0 || st.Drawn != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestDebugCheckShapeCount(t *testing.T) {
	buf := captureLogs(t)
	debugCheckShapeCount(debugMaxShapeCount)
	if buf.Len() != 0 {
		t.Error("threshold itself should not warn")
	}
	debugCheckShapeCount(debugMaxShapeCount + 1)
	if !strings.Contains(buf.String(), "scene is large") {
		t.Errorf("expected a warning, got %s", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() must never be nil")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestShapeAttr(t *testing.T) {
	buf := captureLogs(t)
	sh := NewCircle(Pt(0, 0), 1)
	sh.SetLayer(2)
	Logger().Info("x", shapeAttr(sh), shapeAttr(nil))
	out := buf.String()
	for _, want := range []string{"shape.kind=circle", "shape.layer=2", "shape.id=" + sh.ID().String(), "shape=none"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}
