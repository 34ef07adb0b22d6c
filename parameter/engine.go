package parameter

import "time"

// Scheduler Timing
const (
	// DefaultTickInterval is the simulation tick interval (20Hz)
	DefaultTickInterval = 50 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower values run first
const (
	// PriorityStream commits scene nodes before any consumer runs
	PriorityStream = 10

	// PriorityUpgrade is event-driven; Update is a no-op but priority
	// still orders handler registration diagnostics
	PriorityUpgrade = 50

	// PriorityPalette runs after upgrades so a same-tick palette change
	// reaches freshly derived entries too
	PriorityPalette = 60
)
