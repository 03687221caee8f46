package shoal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Debug         bool
}

// Game adapts a Session to ebiten.Game. Each tick it polls pointer input,
// advances the session by one fixed frame and draws the resulting snapshot.
type Game struct {
	session *Session
	tracker *PointerTracker
	buttons []Button

	// ClearColor fills the screen before the frame is drawn.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNGs. Default "screenshots".
	ScreenshotDir string

	showFPS bool
	fps     fpsCounter

	tickMs  func() float64
	started bool

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewGame wraps session with a pointer tracker and the Reset button.
func NewGame(session *Session) *Game {
	g := &Game{
		session:       session,
		tracker:       NewPointerTracker(),
		ClearColor:    defaultClear,
		ScreenshotDir: "screenshots",
		tickMs: func() float64 {
			return 1000 / float64(ebiten.TPS())
		},
	}
	g.buttons = []Button{{
		Location: Point{X: 100, Y: 100},
		Width:    150,
		Height:   75,
		Label:    "Reset",
		Handler:  g.Reset,
	}}
	return g
}

// Session returns the wrapped session.
func (g *Game) Session() *Session {
	return g.session
}

// Tracker returns the pointer tracker, for injecting synthetic input.
func (g *Game) Tracker() *PointerTracker {
	return g.tracker
}

// Buttons returns the on-screen buttons.
func (g *Game) Buttons() []Button {
	return g.buttons
}

// Reset restarts the round. The next tick advances by zero.
func (g *Game) Reset() {
	g.session.Reset()
	g.started = false
}

// Push implements InputQueue. A drag on a button presses the button instead
// of reaching the session, unless a mover is being steered. Once the round
// is over buttons always win.
func (g *Game) Push(event InputEvent) {
	steering := g.session.Selected() != nil && g.session.Phase() == PhaseRunning
	if event.Type == InputDrag && !steering {
		if b := buttonAt(g.buttons, event.Location); b != nil {
			if b.Handler != nil {
				b.Handler()
			}
			return
		}
	}
	g.session.Push(event)
}

// elapsed returns the frame time for this tick. The first tick of a round
// advances by zero.
func (g *Game) elapsed() float64 {
	if !g.started {
		g.started = true
		return 0
	}
	return g.tickMs()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if g.showFPS {
		g.fps.update()
	}
	g.tracker.Poll(g)
	if g.session.Phase() != PhaseRunning {
		return nil
	}
	g.session.Update(g.elapsed())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.RGBA())
	drawSnapshot(screen, g.session.Snapshot(), g.session.Config().TargetRadius, g.buttons)
	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, g.fps.line, 4, 4)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The play area follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.SetBounds(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and runs g until the window is closed.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	g.showFPS = cfg.ShowFPS
	g.session.SetDebugMode(cfg.Debug)
	g.session.SetBounds(float64(cfg.Width), float64(cfg.Height))

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
