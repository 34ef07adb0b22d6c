package engine

// System is the interface all systems must implement
type System interface {
	// Update advances the system one tick
	// Runs under the world update lock in priority order
	Update()

	// Priority orders systems within a tick; lower values run first
	Priority() int
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World *World
	Res   Resources
}

// NewSystemBase initializes base dependencies from world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World: w,
		Res:   GetResources(w),
	}
}
