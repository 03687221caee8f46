package ecs

import (
	"github.com/phanxgames/shoal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SessionEventType is the Donburi event type for shoal session events.
var SessionEventType = events.NewEventType[shoal.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that queues session events on
// SessionEventType. They are delivered on the next ProcessEvents call.
func NewDonburiSink(world donburi.World) shoal.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event shoal.Event) {
	SessionEventType.Publish(s.world, event)
}

// Tally is a running count of session outcomes built from published events.
type Tally struct {
	Spawned    int
	Goals      int
	Escapes    int
	Collisions int
	Resets     int
	Score      int
}

// SubscribeTally keeps t up to date with every processed SessionEventType
// event in world.
func SubscribeTally(world donburi.World, t *Tally) {
	SessionEventType.Subscribe(world, func(_ donburi.World, e shoal.Event) {
		switch e.Type {
		case shoal.EventSpawn:
			t.Spawned++
		case shoal.EventGoal:
			t.Goals++
		case shoal.EventOutOfBounds:
			t.Escapes++
		case shoal.EventCollision:
			t.Collisions++
		case shoal.EventReset:
			t.Resets++
		}
		t.Score = e.Score
	})
}
