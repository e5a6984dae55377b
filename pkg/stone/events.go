package stone

import "go.minekube.com/common/minecraft/component"

// ShutdownEvent is fired by the Server after all plugins have been
// disabled on shutdown. Subscribers must not block for long.
type ShutdownEvent struct {
	// Reason is the shutdown reason, may be nil.
	Reason component.Component
}

// LevelGameplayEvent is a level-scoped gameplay event handed over by
// the engine. The server only forwards it on the event bus; the
// reference stays opaque and is never interpreted here.
type LevelGameplayEvent struct {
	// Ref is the engine's event reference.
	Ref any
}

// PlayerGameplayEvent is a player-scoped gameplay event handed over
// by the engine, tied to the actor it concerns.
type PlayerGameplayEvent struct {
	// Actor is the subject the event concerns.
	Actor *HumanActor
	// Ref is the engine's event reference.
	Ref any
}

// SendLevelEvent forwards a level-scoped gameplay event to
// plugin subscribers.
func (s *Server) SendLevelEvent(ev *LevelGameplayEvent) {
	s.events.Fire(ev)
}

// SendPlayerEvent forwards a player-scoped gameplay event to
// plugin subscribers.
func (s *Server) SendPlayerEvent(ev *PlayerGameplayEvent) {
	s.events.Fire(ev)
}
