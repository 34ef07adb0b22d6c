package event

// EventType represents the type of engine event
type EventType int

const (
	// EventWorldClear requests mass entity cleanup
	// Trigger: host teardown, test reset
	// Consumer: engine.TickScheduler | Payload: nil
	EventWorldClear EventType = iota

	// EventSceneSpawned signals a streaming job began committing nodes
	// Trigger: stream.Loader on first batch
	// Consumer: diagnostics, sandbox | Payload: *SceneSpawnedPayload
	EventSceneSpawned

	// EventSceneReady signals a sub-scene's full subtree exists in the
	// entity graph. Raised exactly once per asset instance, strictly
	// after the final node batch commits for that tick.
	// Trigger: stream.Loader
	// Consumer: sink.UpgradeSystem | Payload: *SceneReadyPayload
	EventSceneReady

	// EventPaletteChanged signals the base palette material data changed
	// Trigger: stream.Watcher (file change), host calls
	// Consumer: sink.PaletteSystem (when propagation is enabled)
	// Payload: *PaletteChangedPayload
	EventPaletteChanged

	// EventSurfacesUpgraded reports a completed subtree rewrite
	// Informational; lets observers verify upgrade completion without
	// polling component stores
	// Trigger: sink.UpgradeSystem
	// Consumer: diagnostics, sandbox, tests | Payload: *SurfacesUpgradedPayload
	EventSurfacesUpgraded
)

// GameEvent is the envelope pushed through the queue
// Frame records the tick the event was produced on; consumers may use it
// to discard stale events after a world reset
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
