package shoal

import (
	"io"
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

type recordingSink struct {
	events []Event
}

func (r *recordingSink) EmitEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recordingSink) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestSession returns a session over an 800x600 area (target at
// (400, 300)) with logging silenced.
func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s := NewSession(cfg, Rect{Width: 800, Height: 600}, rand.New(rand.NewPCG(1, 2)))
	s.SetLogOutput(io.Discard)
	return s
}

// idle returns a stationary moving mover; IDs start at 100 to stay clear of
// spawner IDs.
func idle(id uint32, x, y float64) *Mover {
	return &Mover{ID: id, Location: Point{x, y}, State: StateMoving, Size: 1}
}

func TestNewSessionSpawnsClearMovers(t *testing.T) {
	s := newTestSession(t, DefaultConfig())

	if got := len(s.Movers()); got != 3 {
		t.Fatalf("len(Movers) = %d, want 3", got)
	}
	for i, a := range s.Movers() {
		if a.State != StateMoving {
			t.Errorf("mover %d state = %v, want moving", i, a.State)
		}
		for _, b := range s.Movers()[i+1:] {
			if d := Distance(a.Location, b.Location); d <= 150 {
				t.Errorf("movers %d and %d spawned %v apart", a.ID, b.ID, d)
			}
		}
	}
	if s.Phase() != PhaseRunning || s.Score() != 0 {
		t.Errorf("phase=%v score=%d, want running/0", s.Phase(), s.Score())
	}
}

func TestSessionDragSelectsClosestAndStartsFreshPath(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	far, closer := idle(100, 100, 100), idle(101, 140, 100)
	closer.Path.Push(Point{700, 500})
	s.movers = []*Mover{far, closer}

	s.Push(InputEvent{Type: InputDrag, Location: Point{125, 100}})
	s.Update(0)

	if s.Selected() != closer {
		t.Fatalf("Selected = %v, want mover 101", s.Selected())
	}
	pts := closer.Path.Points()
	if len(pts) != 1 || pts[0] != (Point{125, 100}) {
		t.Errorf("path = %v, want [{125 100}]", pts)
	}
	if !far.Path.Empty() {
		t.Error("unselected mover received waypoints")
	}
}

func TestSessionPickTieGoesToFirst(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	a, b := idle(100, 100, 100), idle(101, 140, 100)
	s.movers = []*Mover{a, b}

	s.Push(InputEvent{Type: InputDrag, Location: Point{120, 100}})
	s.Update(0)
	if s.Selected() != a {
		t.Errorf("Selected = %v, want the first equidistant mover", s.Selected())
	}
}

func TestSessionDragOutsidePickRadiusIgnored(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 100, 100)
	s.movers = []*Mover{m}

	s.Push(InputEvent{Type: InputDrag, Location: Point{150, 100}}) // exactly 50 away
	s.Push(InputEvent{Type: InputDrag, Location: Point{300, 300}})
	s.Update(0)

	if s.Selected() != nil {
		t.Errorf("Selected = %v, want nil", s.Selected())
	}
	if !m.Path.Empty() {
		t.Errorf("path = %v, want empty", m.Path.Points())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 after Update", s.Pending())
	}
}

func TestSessionDragSpacingAndDragStop(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 100, 100)
	s.movers = []*Mover{m}

	for _, p := range []Point{{100, 100}, {110, 100}, {125, 100}, {130, 100}, {160, 100}} {
		s.Push(InputEvent{Type: InputDrag, Location: p})
	}
	s.Push(InputEvent{Type: InputDragStop})
	s.Update(0)

	// The first waypoint sits on the mover and is reached in the same frame.
	want := []Point{{125, 100}, {160, 100}}
	got := m.Path.Points()
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
	if s.Selected() != nil {
		t.Error("DragStop did not clear the selection")
	}

	// A drag far from every mover after the stop must not extend the path.
	s.Push(InputEvent{Type: InputDrag, Location: Point{500, 100}})
	s.Update(0)
	if m.Path.Len() != 2 {
		t.Errorf("path grew to %d after DragStop", m.Path.Len())
	}
}

func TestSessionGoalScoresAndRespawns(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	sink := &recordingSink{}
	s.SetEventSink(sink)
	scorer := idle(100, 400, 290)
	s.movers = []*Mover{idle(101, 100, 100), scorer, idle(102, 700, 500)}

	s.Update(16)

	if s.Score() != 1 {
		t.Fatalf("Score = %d, want 1", s.Score())
	}
	if len(s.Movers()) != 3 {
		t.Fatalf("len(Movers) = %d, want 3", len(s.Movers()))
	}
	for _, m := range s.Movers() {
		if m == scorer {
			t.Fatal("scored mover still active")
		}
	}
	got := sink.types()
	if len(got) != 2 || got[0] != EventGoal || got[1] != EventSpawn {
		t.Fatalf("events = %v, want [goal spawn]", got)
	}
	if sink.events[0].MoverID != 100 || sink.events[0].Score != 1 {
		t.Errorf("goal event = %+v", sink.events[0])
	}
}

func TestSessionGoalWaitsForAnimation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GoalDelayMs = 100
	s := newTestSession(t, cfg)
	scorer := idle(100, 400, 290)
	s.movers = []*Mover{scorer}

	s.Update(16)
	if scorer.State != StateGoal || s.Score() != 0 {
		t.Fatalf("after reaching target: state=%v score=%d", scorer.State, s.Score())
	}
	s.Update(50)
	if s.Score() != 0 || scorer.Size >= 1 {
		t.Fatalf("mid animation: score=%d size=%v", s.Score(), scorer.Size)
	}
	s.Update(50)
	if s.Score() != 1 {
		t.Fatalf("after animation: score=%d, want 1", s.Score())
	}
}

func TestSessionOutOfBoundsLosesPoint(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	sink := &recordingSink{}
	s.SetEventSink(sink)
	s.movers = []*Mover{idle(100, -5, 300), idle(101, 400, 610)}

	s.Update(16)

	if s.Score() != -2 {
		t.Errorf("Score = %d, want -2", s.Score())
	}
	if len(s.Movers()) != 2 {
		t.Errorf("len(Movers) = %d, want 2", len(s.Movers()))
	}
	// Removal runs from the back of the list.
	if sink.events[0].Type != EventOutOfBounds || sink.events[0].MoverID != 101 {
		t.Errorf("first event = %+v, want out-of-bounds for 101", sink.events[0])
	}
}

func TestSessionCollisionEndsRound(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newTestSession(t, DefaultConfig())
	s.SetClock(clock.Now)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	a, b := idle(100, 100, 100), idle(101, 120, 100)
	s.movers = []*Mover{a, b, idle(102, 600, 500)}

	clock.Advance(3 * time.Second)
	s.Update(16)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, want game-over", s.Phase())
	}
	if a.State != StateCollided || b.State != StateCollided {
		t.Errorf("states = %v, %v; want collided", a.State, b.State)
	}
	last := sink.events[len(sink.events)-1]
	if last.Type != EventCollision || last.MoverID != 100 || last.OtherID != 101 {
		t.Errorf("collision event = %+v", last)
	}

	frame := s.Frame()
	clock.Advance(5 * time.Second)
	s.Update(16)
	if s.Frame() != frame {
		t.Error("Update advanced a finished round")
	}
	if s.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed = %v, want frozen at 3s", s.Elapsed())
	}
}

func TestSessionResetRestartsRound(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := newTestSession(t, DefaultConfig())
	s.SetClock(clock.Now)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	s.movers = []*Mover{idle(100, 100, 100), idle(101, 110, 100), idle(102, 20, 20)}
	s.score = 4
	s.Update(16)
	s.Push(InputEvent{Type: InputDrag, Location: Point{20, 20}})

	clock.Advance(time.Minute)
	s.Reset()

	if s.Phase() != PhaseRunning || s.Score() != 0 || s.Pending() != 0 || s.Selected() != nil {
		t.Fatalf("after Reset: phase=%v score=%d pending=%d selected=%v",
			s.Phase(), s.Score(), s.Pending(), s.Selected())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0", s.Elapsed())
	}
	if len(s.Movers()) != 3 {
		t.Fatalf("len(Movers) = %d, want 3", len(s.Movers()))
	}
	for _, m := range s.Movers() {
		if m.ID >= 100 || m.State != StateMoving {
			t.Errorf("mover %d (state %v) survived Reset", m.ID, m.State)
		}
	}
	if sink.events[len(sink.events)-1].Type != EventReset {
		t.Error("last event is not reset")
	}
}

func TestSessionRemovedMoverClearsSelection(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 10, 10)
	s.movers = []*Mover{m}

	// Select it, then drag it off-screen.
	s.Push(InputEvent{Type: InputDrag, Location: Point{10, 10}})
	s.Update(0)
	if s.Selected() != m {
		t.Fatal("mover not selected")
	}
	m.Location = Point{-1, 10}
	s.Update(16)

	if s.Selected() != nil {
		t.Errorf("Selected = %v after its mover was replaced", s.Selected())
	}
}

func TestSessionMoversFollowDrawnPath(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 100, 100)
	m.Speed = 0.1
	s.movers = []*Mover{m}

	for _, p := range []Point{{100, 100}, {100, 150}, {160, 150}} {
		s.Push(InputEvent{Type: InputDrag, Location: p})
	}
	s.Push(InputEvent{Type: InputDragStop})
	s.Update(0)

	// 0.1 px/ms over 1000 ms = 100 px: 50 down, 50 of the 60 across.
	s.Update(1000)
	if math.Abs(m.Location.X-150) > 1e-9 || math.Abs(m.Location.Y-150) > 1e-9 {
		t.Errorf("Location = %v, want {150 150}", m.Location)
	}
	if m.Path.Len() != 1 {
		t.Errorf("Path.Len = %d, want 1", m.Path.Len())
	}
}

func TestSessionBoundsChangeAppliesNextFrame(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 700, 100)
	s.movers = []*Mover{m}

	s.SetBounds(600, 600)
	if s.Target() != (Point{300, 300}) {
		t.Errorf("Target = %v, want {300 300}", s.Target())
	}
	if m.Location != (Point{700, 100}) {
		t.Error("SetBounds moved a mover")
	}
	s.Update(16)
	if s.Score() != -1 {
		t.Errorf("Score = %d, want -1 after shrinking past the mover", s.Score())
	}
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	m := idle(100, 100, 100)
	s.movers = []*Mover{m}
	s.Push(InputEvent{Type: InputDrag, Location: Point{110, 100}})
	s.Update(0)

	snap := s.Snapshot()
	if snap.SelectedID != 100 || !snap.Movers[0].Selected {
		t.Errorf("selection not in snapshot: %+v", snap)
	}
	if snap.Target != (Point{400, 300}) {
		t.Errorf("Target = %v", snap.Target)
	}
	snap.Movers[0].Location = Point{1, 1}
	snap.Movers[0].Path[0] = Point{2, 2}
	if m.Location != (Point{100, 100}) {
		t.Error("snapshot aliases mover location")
	}
	if front, _ := m.Path.Front(); front != (Point{110, 100}) {
		t.Error("snapshot aliases mover path")
	}
}
