package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/scenesink/event"
)

// ResourceStore is a thread-safe container for global singleton resources
// It allows systems to access shared data (time, config, palette) without
// coupling to the host's wiring code
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be the pointer type of the resource struct so mutation through
// the stored value is visible to all readers
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	t := reflect.TypeOf(resource)
	rs.resources[t] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	t := reflect.TypeOf(target)

	val, ok := rs.resources[t]
	if !ok {
		return target, false
	}

	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, Config) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// === Core Resources ===

// TimeResource wraps time data for systems
// Updated by the TickScheduler at the start of a tick
type TimeResource struct {
	// Now is the wall-clock time of the current tick
	Now time.Time

	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under the world update lock to prevent races with
// system reads
func (tr *TimeResource) Update(now time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.Now = now
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// ConfigResource holds static or semi-static configuration data
type ConfigResource struct {
	// PropagatePalette enables the optional broadcast of palette data
	// changes into already-derived material entries. Off by default;
	// hosts that need synchronized live updates opt in before systems
	// are constructed.
	PropagatePalette bool

	// PalettePath is the optional palette asset file observed by the
	// stream watcher. Empty disables watching.
	PalettePath string
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}
