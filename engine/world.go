package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/event"
)

// ComponentStore holds typed stores for direct system access
// Initialized once in NewWorld; pointers remain valid for the world's
// lifetime
type ComponentStore struct {
	Sink    *Store[component.SinkComponent]
	Link    *Store[component.SceneLinkComponent]
	Surface *Store[component.SurfaceComponent]
	Shared  *Store[component.SharedSurfaceComponent]
	Label   *Store[component.LabelComponent]
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global ResourceStore
	Resources *ResourceStore

	// Typed component stores
	Components ComponentStore

	// Node hierarchy (special - children index, kept as named field)
	Nodes *Hierarchy

	// Direct pointers for high-frequency event path
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Nodes:        NewHierarchy(),
		Components: ComponentStore{
			Sink:    NewStore[component.SinkComponent](),
			Link:    NewStore[component.SceneLinkComponent](),
			Surface: NewStore[component.SurfaceComponent](),
			Shared:  NewStore[component.SharedSurfaceComponent](),
			Label:   NewStore[component.LabelComponent](),
		},
		systems: make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Nodes,
		w.Components.Sink,
		w.Components.Link,
		w.Components.Surface,
		w.Components.Shared,
		w.Components.Label,
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// The entity's material store entries are not touched; derived entries
// orphaned by sink destruction stay in the store (no compaction)
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// DestroySubtree removes root and every descendant from all stores
// The descendant set is snapshotted first, then removed through a command
// buffer so partially-destroyed subtrees are never observable mid-walk
func (w *World) DestroySubtree(root core.Entity) {
	cb := NewCommandBuffer()
	cb.Destroy(root)
	for _, e := range w.Nodes.Descendants(root) {
		cb.Destroy(e)
	}
	cb.Apply(w)
}

// Alive reports whether the entity still carries any component
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
// Used by TickScheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the
// update lock
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}
}

// FrameNumber returns the current authoritative frame index
// Optimized for hot-path access by simulation and event producers
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during scheduler construction
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits an engine event using direct cached pointers
// This is the hot-path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil || w.frameSource == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}
