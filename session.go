package shoal

import (
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/tanema/gween/ease"
)

// EventSink receives session events. Set one with Session.SetEventSink to
// forward scoring and collisions to another system (see package ecs).
type EventSink interface {
	EmitEvent(event Event)
}

// Event describes something that happened during a frame.
type Event struct {
	Type      EventType
	Frame     uint64
	MoverID   uint32
	OtherID   uint32 // second mover of a collision
	MoverType MoverType
	Location  Point
	Score     int // score after the event was applied
}

// Session owns the active movers, the score and the pointer selection, and
// advances them one frame at a time. It is not safe for concurrent use: all
// calls must come from the goroutine that drives the frames.
type Session struct {
	cfg     Config
	spawner *Spawner
	area    Rect

	movers   []*Mover
	score    int
	phase    Phase
	selected *Mover
	pending  []InputEvent
	frame    uint64

	now     func() time.Time
	started time.Time
	ended   time.Time

	sink      EventSink
	debug     bool
	logOutput io.Writer
}

// NewSession creates a running session over area with a fresh set of movers.
// A nil rng seeds one randomly.
func NewSession(cfg Config, area Rect, rng *rand.Rand) *Session {
	s := &Session{
		cfg:       cfg,
		spawner:   NewSpawner(cfg, rng),
		area:      area,
		now:       time.Now,
		logOutput: os.Stderr,
	}
	s.start()
	return s
}

// start spawns a full mover set and zeroes score, timer, selection and input.
func (s *Session) start() {
	s.movers = s.movers[:0]
	s.score = 0
	s.phase = PhaseRunning
	s.selected = nil
	s.pending = s.pending[:0]
	s.started = s.now()
	s.ended = time.Time{}

	for i := 0; i < s.cfg.MoverCount; i++ {
		s.spawnInto()
	}
}

// Reset starts a new round: new movers, zero score, restarted timer. Queued
// input from the previous round is dropped.
func (s *Session) Reset() {
	s.start()
	s.emit(Event{Type: EventReset})
}

// Config returns the session's tuning.
func (s *Session) Config() Config {
	return s.cfg
}

// SetEventSink sets the optional event receiver. Pass nil to remove it.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetClock replaces the wall clock used for the session timer.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
	s.started = now()
}

// SetBounds resizes the play area. Movers are not repositioned; the new size
// applies to the next frame's bounds checks, target and spawns.
func (s *Session) SetBounds(width, height float64) {
	s.area = Rect{Width: width, Height: height}
}

// Bounds returns the play area.
func (s *Session) Bounds() Rect {
	return s.area
}

// Target returns the current goal point, the center of the play area.
func (s *Session) Target() Point {
	return s.area.Target()
}

// Score returns the running score. It goes negative when more movers escape
// than reach the target.
func (s *Session) Score() int {
	return s.score
}

// Phase returns whether the round is running or over.
func (s *Session) Phase() Phase {
	return s.phase
}

// Frame returns the number of frames simulated since the session was created.
func (s *Session) Frame() uint64 {
	return s.frame
}

// Elapsed returns the round time. It stops advancing when the round ends.
func (s *Session) Elapsed() time.Duration {
	if s.phase == PhaseGameOver {
		return s.ended.Sub(s.started)
	}
	return s.now().Sub(s.started)
}

// Movers returns the active movers. The slice belongs to the session and is
// only valid until the next Update or Reset.
func (s *Session) Movers() []*Mover {
	return s.movers
}

// Selected returns the mover currently taking path input, or nil.
func (s *Session) Selected() *Mover {
	return s.selected
}

// Push queues a pointer event for the next Update.
func (s *Session) Push(event InputEvent) {
	s.pending = append(s.pending, event)
}

// Pending returns the number of queued pointer events.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Update simulates one frame of elapsedMs milliseconds: queued input is
// applied, every mover steps, scored and escaped movers are replaced, and the
// first colliding pair ends the round. Update does nothing once the round is
// over; call Reset to play again.
func (s *Session) Update(elapsedMs float64) {
	if s.phase != PhaseRunning {
		return
	}
	s.frame++

	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	stats.inputs = len(s.pending)
	s.drainInput()

	area := s.area
	for _, m := range s.movers {
		if err := m.Step(area, s.cfg.TargetRadius, elapsedMs); err != nil {
			if errors.Is(err, ErrNonFinite) {
				stats.discarded++
			}
			s.logf("warning: frame %d: %v", s.frame, err)
		}
		s.animateGoal(m, elapsedMs)
	}

	for i := len(s.movers) - 1; i >= 0; i-- {
		m := s.movers[i]
		if !m.State.Terminal() {
			continue
		}
		ev := Event{MoverID: m.ID, MoverType: m.Type, Location: m.Location}
		if m.State == StateGoalAnimationFinished {
			s.score++
			ev.Type = EventGoal
			stats.goals++
		} else {
			s.score--
			ev.Type = EventOutOfBounds
			stats.escapes++
		}
		ev.Score = s.score
		s.remove(i)
		s.emit(ev)
		s.spawnInto()
	}

	if i, j, ok := FirstCollision(s.movers, s.cfg.CollisionDistance); ok {
		a, b := s.movers[i], s.movers[j]
		a.State = StateCollided
		b.State = StateCollided
		s.phase = PhaseGameOver
		s.ended = s.now()
		s.emit(Event{
			Type:      EventCollision,
			MoverID:   a.ID,
			OtherID:   b.ID,
			MoverType: a.Type,
			Location:  a.Location,
			Score:     s.score,
		})
		stats.collided = true
	}

	if s.debug {
		stats.frameTime = time.Since(t0)
		stats.movers = len(s.movers)
		s.debugLog(stats)
	}
}

// animateGoal starts or advances the goal animation of a mover in StateGoal.
func (s *Session) animateGoal(m *Mover, elapsedMs float64) {
	if m.State != StateGoal {
		return
	}
	if m.goal == nil {
		m.goal = NewGoalTween(m, s.cfg.GoalDelayMs, ease.InQuad)
		return
	}
	m.goal.Update(elapsedMs)
}

// remove drops the mover at index i, keeping the order of the rest.
func (s *Session) remove(i int) {
	m := s.movers[i]
	if s.selected == m {
		s.selected = nil
	}
	copy(s.movers[i:], s.movers[i+1:])
	s.movers[len(s.movers)-1] = nil
	s.movers = s.movers[:len(s.movers)-1]
}

// spawnInto appends a new mover kept clear of the existing ones.
func (s *Session) spawnInto() {
	m, ok := s.spawner.SpawnClear(s.area, s.movers)
	if !ok {
		s.logf("warning: mover %d spawned within %v of another after %d attempts",
			m.ID, s.cfg.SpawnBuffer(), s.cfg.SpawnAttempts)
	}
	s.movers = append(s.movers, m)
	s.emit(Event{Type: EventSpawn, MoverID: m.ID, MoverType: m.Type, Location: m.Location, Score: s.score})
}

func (s *Session) emit(ev Event) {
	if s.sink == nil {
		return
	}
	ev.Frame = s.frame
	s.sink.EmitEvent(ev)
}

// --- Input ---

// drainInput applies and clears every queued pointer event in arrival order.
func (s *Session) drainInput() {
	for _, ev := range s.pending {
		switch ev.Type {
		case InputDrag:
			s.drag(ev.Location)
		case InputDragStop:
			s.selected = nil
		}
	}
	s.pending = s.pending[:0]
}

// drag extends the selected mover's path. Without a selection the closest
// mover within PickRadius is selected and its old path discarded; with no
// such mover the point is ignored.
func (s *Session) drag(p Point) {
	if s.selected == nil {
		s.selected = s.pick(p)
		if s.selected == nil {
			return
		}
		s.selected.Path.Clear()
	}
	s.selected.Path.PushSpaced(p, s.cfg.MinWaypointSpacing)
}

// pick returns the mover closest to p within PickRadius. Ties go to the
// mover found first.
func (s *Session) pick(p Point) *Mover {
	var best *Mover
	bestDist := s.cfg.PickRadius
	for _, m := range s.movers {
		if d := Distance(p, m.Location); d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}

// --- Snapshot ---

// MoverView is a copy of a mover's render-relevant state.
type MoverView struct {
	ID       uint32
	Location Point
	Heading  float64
	Type     MoverType
	State    MoverState
	Size     float64
	Path     []Point
	Selected bool
}

// Snapshot is an immutable copy of everything a renderer needs for a frame.
type Snapshot struct {
	Frame      uint64
	Area       Rect
	Target     Point
	Movers     []MoverView
	Score      int
	Elapsed    time.Duration
	Phase      Phase
	SelectedID uint32 // zero when nothing is selected
}

// Snapshot copies the current state for rendering. Nothing in the result
// aliases session memory.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:   s.frame,
		Area:    s.area,
		Target:  s.area.Target(),
		Movers:  make([]MoverView, len(s.movers)),
		Score:   s.score,
		Elapsed: s.Elapsed(),
		Phase:   s.phase,
	}
	if s.selected != nil {
		snap.SelectedID = s.selected.ID
	}
	for i, m := range s.movers {
		snap.Movers[i] = MoverView{
			ID:       m.ID,
			Location: m.Location,
			Heading:  m.Heading,
			Type:     m.Type,
			State:    m.State,
			Size:     m.Size,
			Path:     m.Path.Points(),
			Selected: m == s.selected,
		}
	}
	return snap
}
