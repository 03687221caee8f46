package shoal

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Mover radius in pixels at Size 1.
const moverRadius = 15

var (
	colorTarget   = Color{R: 0.68, G: 0.85, B: 0.9, A: 1} // light blue
	colorSlow     = Color{R: 0, G: 0.5, B: 0, A: 1}       // green
	colorMedium   = Color{R: 0.5, G: 0, B: 0, A: 1}       // maroon
	colorFast     = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}   // grey
	colorCollided = Color{R: 0.9, G: 0.1, B: 0.1, A: 1}   // red
	colorSelected = Color{R: 1, G: 0.85, B: 0.2, A: 1}    // gold
	colorButton   = Color{R: 1, G: 0.45, B: 0.45, A: 1}   // light red
	colorGameOver = Color{R: 0, G: 0, B: 0, A: 0.35}
	defaultClear  = Color{R: 0.04, G: 0.12, B: 0.2, A: 1} // deep water
)

// moverColor returns the fill color for a mover: red once collided,
// otherwise the color of its type.
func moverColor(v MoverView) Color {
	if v.State == StateCollided {
		return colorCollided
	}
	switch v.Type {
	case MoverMedium:
		return colorMedium
	case MoverFast:
		return colorFast
	default:
		return colorSlow
	}
}

// statsText formats the timer and score readout. The timer shows whole
// seconds.
func statsText(snap Snapshot) string {
	text := fmt.Sprintf("Time: %d\nScore: %d", int(snap.Elapsed.Seconds()), snap.Score)
	if snap.Phase == PhaseGameOver {
		text += "\nCOLLISION! Press Reset"
	}
	return text
}

// drawSnapshot renders one frame. It reads the snapshot only.
func drawSnapshot(screen *ebiten.Image, snap Snapshot, targetRadius float64, buttons []Button) {
	tx, ty := float32(snap.Target.X), float32(snap.Target.Y)
	vector.DrawFilledCircle(screen, tx, ty, float32(targetRadius), colorTarget.RGBA(), true)

	for _, v := range snap.Movers {
		drawPath(screen, v)
		drawMover(screen, v)
	}

	if snap.Phase == PhaseGameOver {
		vector.DrawFilledRect(screen, 0, 0, float32(snap.Area.Width), float32(snap.Area.Height), colorGameOver.RGBA(), false)
	}

	for _, b := range buttons {
		x := float32(b.Location.X - b.Width/2)
		y := float32(b.Location.Y - b.Height/2)
		vector.DrawFilledRect(screen, x, y, float32(b.Width), float32(b.Height), colorButton.RGBA(), false)
		ebitenutil.DebugPrintAt(screen, b.Label, int(b.Location.X)-3*len(b.Label), int(b.Location.Y)-8)
	}

	ebitenutil.DebugPrintAt(screen, statsText(snap), int(snap.Area.Width)-160, 20)
}

// drawPath marks each queued waypoint with a small dot and joins them.
// The selected mover's path is highlighted.
func drawPath(screen *ebiten.Image, v MoverView) {
	if len(v.Path) == 0 {
		return
	}
	c := moverColor(v)
	if v.Selected {
		c = colorSelected
	}
	prev := v.Location
	for _, p := range v.Path {
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), 1, c.RGBA(), true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, c.RGBA(), true)
		prev = p
	}
}

// drawMover draws the body scaled by Size with a nose line along the heading.
func drawMover(screen *ebiten.Image, v MoverView) {
	r := float32(moverRadius * v.Size)
	if r <= 0 {
		return
	}
	x, y := float32(v.Location.X), float32(v.Location.Y)
	vector.DrawFilledCircle(screen, x, y, r, moverColor(v).RGBA(), true)
	if v.Selected {
		vector.StrokeCircle(screen, x, y, r+3, 2, colorSelected.RGBA(), true)
	}
	nose := Advance(v.Location, v.Heading, float64(r)*1.4)
	if finitePoint(nose) && !math.IsNaN(v.Heading) {
		vector.StrokeLine(screen, x, y, float32(nose.X), float32(nose.Y), 2, ColorWhite.RGBA(), true)
	}
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}
