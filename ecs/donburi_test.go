package ecs

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/shoal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSinkEmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []shoal.Event
	SessionEventType.Subscribe(world, func(w donburi.World, e shoal.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(shoal.Event{
		Type:      shoal.EventGoal,
		Frame:     7,
		MoverID:   42,
		MoverType: shoal.MoverFast,
		Location:  shoal.Point{X: 100, Y: 200},
		Score:     3,
	})
	sink.EmitEvent(shoal.Event{Type: shoal.EventCollision, MoverID: 1, OtherID: 2})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	SessionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != shoal.EventGoal || e0.MoverID != 42 || e0.Score != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Location != (shoal.Point{X: 100, Y: 200}) {
		t.Errorf("event 0 location: %v", e0.Location)
	}
	e1 := received[1]
	if e1.Type != shoal.EventCollision || e1.OtherID != 2 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSinkMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SessionEventType.Subscribe(world, func(w donburi.World, e shoal.Event) {
		count1++
	})
	SessionEventType.Subscribe(world, func(w donburi.World, e shoal.Event) {
		count2++
	})

	sink.EmitEvent(shoal.Event{Type: shoal.EventReset})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestTallyFollowsSession(t *testing.T) {
	world := donburi.NewWorld()
	var tally Tally
	SubscribeTally(world, &tally)

	cfg := shoal.DefaultConfig()
	s := shoal.NewSession(cfg, shoal.Rect{Width: 800, Height: 600}, rand.New(rand.NewPCG(5, 6)))
	s.SetLogOutput(io.Discard)
	s.SetEventSink(NewDonburiSink(world))

	// Walk one mover onto the target.
	movers := s.Movers()
	for i, m := range movers {
		m.Location = shoal.Point{X: 100 + float64(i)*200, Y: 50}
		m.Speed = 0
	}
	movers[0].Location = s.Target()
	s.Update(16)
	events.ProcessAllEvents(world)

	if tally.Goals != 1 || tally.Score != 1 || tally.Spawned != 1 {
		t.Errorf("after goal: %+v", tally)
	}

	s.Reset()
	events.ProcessAllEvents(world)
	if tally.Resets != 1 || tally.Spawned != 1+cfg.MoverCount || tally.Score != 0 {
		t.Errorf("after reset: %+v", tally)
	}
}
