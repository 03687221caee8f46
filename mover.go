package shoal

import (
	"errors"
	"fmt"
)

// ErrNonFinite is returned by Mover.Step when a frame produced a NaN or
// infinite coordinate or heading. The frame is discarded: the mover keeps
// the location, heading and path it had before the call.
var ErrNonFinite = errors.New("non-finite mover state")

// Mover is an agent drifting toward the target or walking a drawn path.
type Mover struct {
	ID       uint32
	Location Point

	// Heading uses the HeadingTo convention. It is recomputed toward each
	// waypoint while a path is followed and frozen otherwise.
	Heading float64

	// Speed is the distance travelled per millisecond, fixed at spawn.
	Speed float64

	Path  Path
	Type  MoverType
	State MoverState

	// Size is a rendering scale; the goal animation shrinks it to zero.
	Size float64

	goal *GoalTween
}

// Step advances the mover by elapsedMs milliseconds inside area.
//
// A mover within targetRadius of the target switches to StateGoal and a mover
// outside area switches to StateOutOfBounds; neither moves that frame. A
// mover in any state other than StateMoving is left untouched.
//
// Otherwise the mover spends speed*elapsedMs of travel: it walks the path
// front to back, snapping onto each waypoint it reaches and carrying the
// remaining distance on toward the next one, then spends whatever is left
// along its last heading. Zero or negative elapsed time moves nothing.
func (m *Mover) Step(area Rect, targetRadius, elapsedMs float64) error {
	if m.State != StateMoving {
		return nil
	}
	if Distance(m.Location, area.Target()) < targetRadius {
		m.State = StateGoal
		return nil
	}
	if !area.Contains(m.Location) {
		m.State = StateOutOfBounds
		return nil
	}

	budget := m.Speed * elapsedMs
	if !finite(budget) {
		return fmt.Errorf("mover %d: budget %v: %w", m.ID, budget, ErrNonFinite)
	}
	if budget < 0 {
		budget = 0
	}

	// Work on copies and commit only a finite result.
	loc, heading := m.Location, m.Heading
	reached := 0
	for reached < m.Path.Len() {
		next := m.Path.at(reached)
		d := Distance(loc, next)
		if d > 0 {
			heading = HeadingTo(loc, next)
		}
		if d > budget {
			loc = Advance(loc, heading, budget)
			budget = 0
			break
		}
		loc = next
		reached++
		budget -= d
	}
	if budget > 0 {
		loc = Advance(loc, heading, budget)
	}

	if !finitePoint(loc) || !finite(heading) {
		return fmt.Errorf("mover %d: location %v heading %v: %w", m.ID, loc, heading, ErrNonFinite)
	}
	m.Location = loc
	m.Heading = heading
	m.Path.drop(reached)
	return nil
}
