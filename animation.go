package shoal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GoalTween shrinks a mover that reached the target and flips it to
// StateGoalAnimationFinished when the shrink completes. Call Update each
// frame with the elapsed milliseconds; the session does this for every
// mover in StateGoal.
type GoalTween struct {
	tween  *gween.Tween
	target *Mover
	Done   bool
}

// NewGoalTween starts shrinking m.Size to zero over durationMs using fn.
// A zero duration finishes immediately.
func NewGoalTween(m *Mover, durationMs float64, fn ease.TweenFunc) *GoalTween {
	g := &GoalTween{target: m}
	if durationMs <= 0 {
		g.finish()
		return g
	}
	g.tween = gween.New(float32(m.Size), 0, float32(durationMs/1000), fn)
	return g
}

// Update advances the tween by dtMs milliseconds and writes the new size to
// the mover. It is a no-op once Done is set.
func (g *GoalTween) Update(dtMs float64) {
	if g.Done {
		return
	}
	if dtMs < 0 {
		dtMs = 0
	}
	val, finished := g.tween.Update(float32(dtMs / 1000))
	g.target.Size = float64(val)
	if finished {
		g.finish()
	}
}

func (g *GoalTween) finish() {
	g.Done = true
	g.target.Size = 0
	g.target.State = StateGoalAnimationFinished
}
