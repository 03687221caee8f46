// Package tui plays a shoal session in a terminal. Each cell stands for a
// block of play-area pixels; the mouse steers and the keyboard resets or
// quits.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/shoal"
)

// Default cell size in play-area units. Terminal cells are about twice as
// tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultTick       = 16 * time.Millisecond
)

var (
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	styleSlow     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMedium   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleFast     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCollided = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStats    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Frontend drives a Session from a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *shoal.Session

	cellW, cellH float64
	tick         time.Duration

	held    bool
	started bool
}

// New wraps an initialized screen. The session's play area is resized to
// the screen.
func New(screen tcell.Screen, session *shoal.Session) *Frontend {
	f := &Frontend{
		screen:  screen,
		session: session,
		cellW:   DefaultCellWidth,
		cellH:   DefaultCellHeight,
		tick:    DefaultTick,
	}
	f.resize()
	return f
}

// SetTick sets the frame interval used by Run and the frame time fed to
// the session.
func (f *Frontend) SetTick(d time.Duration) {
	if d > 0 {
		f.tick = d
	}
}

// toPlay maps the center of a cell to play-area coordinates.
func (f *Frontend) toPlay(col, row int) shoal.Point {
	return shoal.Point{X: (float64(col) + 0.5) * f.cellW, Y: (float64(row) + 0.5) * f.cellH}
}

// toCell maps a play-area point to the cell containing it.
func (f *Frontend) toCell(p shoal.Point) (int, int) {
	return int(p.X / f.cellW), int(p.Y / f.cellH)
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	f.session.SetBounds(float64(w)*f.cellW, float64(h)*f.cellH)
}

func (f *Frontend) reset() {
	f.session.Reset()
	f.held = false
	f.started = false
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			f.reset()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := f.toPlay(col, row)
		if ev.Buttons()&(tcell.Button1|tcell.Button2|tcell.Button3) != 0 {
			f.held = true
			f.session.Push(shoal.InputEvent{Type: shoal.InputDrag, Location: p})
		} else if f.held {
			f.held = false
			f.session.Push(shoal.InputEvent{Type: shoal.InputDragStop, Location: p})
		}
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	}
	return true
}

// step advances the session by one tick and redraws. The first tick of a
// round advances by zero.
func (f *Frontend) step() {
	if f.session.Phase() == shoal.PhaseRunning {
		elapsed := 0.0
		if f.started {
			elapsed = float64(f.tick) / float64(time.Millisecond)
		}
		f.started = true
		f.session.Update(elapsed)
	}
	f.draw()
}

// Run enables the mouse and plays until the user quits or ctx is done. The
// screen is left initialized; the caller owns Fini.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse(tcell.MouseDragEvents)
	defer f.screen.DisableMouse()

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.step()
		}
	}
}

func (f *Frontend) draw() {
	f.screen.Clear()
	snap := f.session.Snapshot()

	f.drawTarget(snap.Target, f.session.Config().TargetRadius)
	for _, v := range snap.Movers {
		style := moverStyle(v)
		if v.Selected {
			style = styleSelected
		}
		for _, p := range v.Path {
			f.set(p, '·', style)
		}
	}
	for _, v := range snap.Movers {
		f.set(v.Location, moverRune(v), moverStyle(v))
	}

	f.text(0, 0, fmt.Sprintf("Time: %d  Score: %d", int(snap.Elapsed.Seconds()), snap.Score), styleStats)
	if snap.Phase == shoal.PhaseGameOver {
		f.text(0, 1, "COLLISION! r to reset, q to quit", styleCollided)
	}
	f.screen.Show()
}

// drawTarget shades every cell whose center lies inside the target disc,
// and always the cell holding the target point itself.
func (f *Frontend) drawTarget(target shoal.Point, radius float64) {
	c0, r0 := f.toCell(shoal.Point{X: target.X - radius, Y: target.Y - radius})
	c1, r1 := f.toCell(shoal.Point{X: target.X + radius, Y: target.Y + radius})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if shoal.Distance(f.toPlay(col, row), target) <= radius {
				f.screen.SetContent(col, row, '░', nil, styleTarget)
			}
		}
	}
	f.set(target, '◎', styleTarget)
}

func (f *Frontend) set(p shoal.Point, r rune, style tcell.Style) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	col, row := f.toCell(p)
	w, h := f.screen.Size()
	if col >= w || row >= h {
		return
	}
	f.screen.SetContent(col, row, r, nil, style)
}

func (f *Frontend) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func moverStyle(v shoal.MoverView) tcell.Style {
	if v.State == shoal.StateCollided {
		return styleCollided
	}
	switch v.Type {
	case shoal.MoverMedium:
		return styleMedium
	case shoal.MoverFast:
		return styleFast
	default:
		return styleSlow
	}
}

// moverRune shrinks the glyph as the goal animation runs.
func moverRune(v shoal.MoverView) rune {
	switch {
	case v.State == shoal.StateCollided:
		return 'X'
	case v.Size < 0.5:
		return '•'
	default:
		return '●'
	}
}
