package easel

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Status overlay timing, in seconds.
const (
	statusHold = 1.5
	statusFade = 0.75
)

// RunConfig configures Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window and canvas size in pixels. Zero means
	// 800x600.
	Width, Height int
	// ScreenshotDir receives PNGs from Screenshot and script steps. Empty
	// means "screenshots".
	ScreenshotDir string
	// ShowFPS draws the current FPS and TPS in the corner.
	ShowFPS bool
	// ShowStatus draws the editor's status messages along the bottom edge.
	ShowStatus bool
	// Debug logs render stats every frame.
	Debug bool
	// TestScript, when set, is replayed before real input is read. The app
	// exits once the script is done.
	TestScript *TestRunner
}

func (c *RunConfig) withDefaults() {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Title == "" {
		c.Title = "easel"
	}
}

// pointerState tracks the mouse between frames.
type pointerState struct {
	down bool
	last Point
}

// App drives an Editor from ebiten input and renders it every frame. It
// implements ebiten.Game.
type App struct {
	editor  *Editor
	surface *EbitenSurface
	cfg     RunConfig

	pointer         pointerState
	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	screenshotDir   string
	testRunner      *TestRunner

	status      string
	statusTween *gween.Sequence
	statusAlpha float32
}

// NewApp wraps editor. The editor's canvas size and OnStatus are set from cfg.
func NewApp(editor *Editor, cfg RunConfig) *App {
	cfg.withDefaults()
	a := &App{
		editor:        editor,
		surface:       NewEbitenSurface(nil),
		cfg:           cfg,
		screenshotDir: cfg.ScreenshotDir,
		testRunner:    cfg.TestScript,
	}
	editor.SetCanvasSize(float64(cfg.Width), float64(cfg.Height))
	editor.SetDebugMode(cfg.Debug)
	prev := editor.OnStatus
	editor.OnStatus = func(msg string) {
		a.showStatus(msg)
		if prev != nil {
			prev(msg)
		}
	}
	return a
}

// Editor returns the driven editor.
func (a *App) Editor() *Editor { return a.editor }

// Surface returns the surface used by Draw.
func (a *App) Surface() *EbitenSurface { return a.surface }

// Status returns the last status message and its current opacity.
func (a *App) Status() (string, float32) { return a.status, a.statusAlpha }

func (a *App) showStatus(msg string) {
	a.status = msg
	a.statusAlpha = 1
	a.statusTween = gween.NewSequence(
		gween.New(1, 1, statusHold, ease.Linear),
		gween.New(1, 0, statusFade, ease.InQuad),
	)
	Logger().Debug("status", slog.String("msg", msg))
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.testRunner != nil {
		a.testRunner.step(a)
		if a.testRunner.Done() && len(a.injectQueue) == 0 && len(a.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}

	if !a.processInjectedInput() && a.testRunner == nil {
		x, y := ebiten.CursorPosition()
		a.processPointer(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	a.processKeys()
	a.advanceStatus(1 / float32(ebiten.TPS()))
	return nil
}

// processKeys forwards newly pressed shortcut keys to the editor.
func (a *App) processKeys() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyDelete:
			a.editor.HandleKey(KeyDelete)
		case ebiten.KeyBackspace:
			a.editor.HandleKey(KeyBackspace)
		case ebiten.KeyEscape:
			a.editor.HandleKey(KeyEscape)
		}
	}
}

func (a *App) advanceStatus(dt float32) {
	if a.statusTween == nil {
		return
	}
	v, _, done := a.statusTween.Update(dt)
	a.statusAlpha = v
	if done {
		a.statusTween = nil
		a.statusAlpha = 0
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.editor.Render(a.surface)

	if a.cfg.ShowStatus && a.statusAlpha > 0 && a.status != "" {
		a.drawStatus(screen)
	}
	if a.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	a.flushScreenshots(screen)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	const lineH = 16
	b := screen.Bounds()
	img := ebiten.NewImage(b.Dx(), lineH)
	defer img.Deallocate()
	img.Fill(ColorBlack.WithAlpha(0.5).toRGBA())
	ebitenutil.DebugPrintAt(img, a.status, 4, 0)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(0, float64(b.Dy()-lineH))
	op.ColorScale.ScaleAlpha(a.statusAlpha)
	screen.DrawImage(img, &op)
}

// Layout implements ebiten.Game.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens a window and drives editor until it is closed or, with a test
// script, until the script completes.
func Run(editor *Editor, cfg RunConfig) error {
	app := NewApp(editor, cfg)
	ebiten.SetWindowTitle(app.cfg.Title)
	ebiten.SetWindowSize(app.cfg.Width, app.cfg.Height)
	Logger().Info("run", slog.String("title", app.cfg.Title),
		slog.Int("width", app.cfg.Width), slog.Int("height", app.cfg.Height))
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
