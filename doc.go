// Package shoal is a small arcade game engine for [Ebitengine]: movers
// enter from the edges of the play area, the player drags from a mover to
// draw the path it follows, and each mover guided into the central target
// scores a point. A mover that leaves the area costs a point; two movers
// touching ends the round.
//
// # Quick start
//
// [Run] opens a window and drives the whole loop:
//
//	session := shoal.NewSession(shoal.DefaultConfig(), shoal.Rect{Width: 800, Height: 600}, nil)
//	shoal.Run(shoal.NewGame(session), shoal.RunConfig{
//		Title: "Shoal", Width: 800, Height: 600,
//	})
//
// # Simulation
//
// [Session] holds all game state and advances it one frame at a time with
// [Session.Update]. It never reads the clock for movement: callers pass the
// frame time in milliseconds, so a session can be stepped headless and
// deterministically, for example from tests or from package tui.
//
// Within a frame, queued pointer input is applied first, then every mover
// steps along its path, then movers that reached the target or left the area
// are scored and replaced, and finally the first pair of movers closer than
// [Config.CollisionDistance] ends the round.
//
// # Movement
//
// A mover heading h moves by (sin h, cos h) per unit of distance. Each frame
// it travels Speed × elapsed along its waypoints, snapping to each one it
// reaches and carrying the remaining distance on to the next. Distance left
// after the last waypoint is spent along the current heading, so a mover
// with no path keeps going straight.
//
// # Input
//
// [PointerTracker] reduces mouse and touch input to Drag and DragStop
// events. The first Drag selects the closest mover within
// [Config.PickRadius] and clears its path; later Drags append waypoints at
// least [Config.MinWaypointSpacing] apart. Synthetic input can be injected
// with [PointerTracker.InjectDrag] and friends, and [LoadTestScript] plays a
// JSON script of input, waits, resets and screenshots.
//
// # Events
//
// Set an [EventSink] with [Session.SetEventSink] to observe spawns, goals,
// escapes, collisions and resets. Package ecs provides a Donburi sink.
//
// [Ebitengine]: https://ebitengine.org
package shoal
