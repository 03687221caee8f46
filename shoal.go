package shoal

import "image/color"

// Point is an absolute position in play-area coordinates. The origin is the
// top-left corner with Y increasing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The play area is a Rect at the origin.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Target returns the center of the rectangle. It is recomputed on every call
// so that a resized play area moves the target with it.
func (r Rect) Target() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MoverType selects a mover's speed tier and appearance.
type MoverType uint8

const (
	MoverSlow   MoverType = iota // turtle
	MoverMedium                  // ray
	MoverFast                    // shark
)

// moverTypes lists every type variant; spawning indexes it uniformly.
var moverTypes = [...]MoverType{MoverSlow, MoverMedium, MoverFast}

func (t MoverType) String() string {
	switch t {
	case MoverSlow:
		return "slow"
	case MoverMedium:
		return "medium"
	case MoverFast:
		return "fast"
	default:
		return "unknown"
	}
}

// MoverState is a mover's lifecycle tag.
type MoverState uint8

const (
	StateMoving                MoverState = iota // travelling along its path or heading
	StateGoal                                    // reached the target, goal animation running
	StateGoalAnimationFinished                   // ready to be scored and replaced
	StateOutOfBounds                             // left the play area
	StateCollided                                // hit another mover
)

func (s MoverState) String() string {
	switch s {
	case StateMoving:
		return "moving"
	case StateGoal:
		return "goal"
	case StateGoalAnimationFinished:
		return "goal-finished"
	case StateOutOfBounds:
		return "out-of-bounds"
	case StateCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session should score and replace the mover.
// StateGoal is not terminal on its own; it waits for the goal animation.
func (s MoverState) Terminal() bool {
	return s == StateGoalAnimationFinished || s == StateOutOfBounds
}

// InputType identifies a queued pointer event.
type InputType uint8

const (
	InputDrag     InputType = iota // pointer held down at Location
	InputDragStop                  // pointer released
)

// InputEvent is a single queued pointer event. Location is only meaningful
// for InputDrag.
type InputEvent struct {
	Type     InputType
	Location Point
}

// Phase is the session's round state.
type Phase uint8

const (
	PhaseRunning  Phase = iota // frames advance
	PhaseGameOver              // a collision paused the round; Reset restarts it
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "running"
}

// EventType identifies a session event forwarded to an EventSink.
type EventType uint8

const (
	EventSpawn       EventType = iota // a mover entered play
	EventGoal                         // a mover finished its goal animation (+1)
	EventOutOfBounds                  // a mover left the play area (-1)
	EventCollision                    // two movers collided; the round is over
	EventReset                        // the session was reset
)
