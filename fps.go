package shoal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsInterval is how often, in ticks, the FPS readout is refreshed.
const fpsInterval = 30

// fpsCounter caches the FPS/TPS line so it does not flicker every frame.
type fpsCounter struct {
	ticks int
	line  string
}

// update refreshes the readout every fpsInterval ticks.
func (c *fpsCounter) update() {
	if c.ticks%fpsInterval == 0 {
		c.line = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	c.ticks++
}
