// Package ecs forwards shoal session events into a Donburi world.
//
// [NewDonburiSink] publishes every spawn, goal, escape, collision and reset
// as a typed [SessionEventType] event. Subscribe to it from ECS systems and
// drain it with ProcessEvents each frame.
//
// Usage:
//
//	session.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
