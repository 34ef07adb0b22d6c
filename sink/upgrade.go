package sink

import (
	"sync/atomic"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/parameter"
)

// UpgradeSystem replaces generic surface references with the owning
// sink's derived material when a sub-scene finishes materializing
//
// Purely event-driven: Update is a no-op, all work happens in
// HandleEvent during the dispatch phase. The ready event is delivered
// exactly once per asset instance and strictly after the subtree is
// committed, so resolution always observes a fully-constructed sink or
// none at all.
type UpgradeSystem struct {
	engine.SystemBase

	statUpgraded *atomic.Int64
	statOrphaned *atomic.Int64
}

// NewUpgradeSystem creates the upgrade dispatcher
func NewUpgradeSystem(w *engine.World) *UpgradeSystem {
	s := &UpgradeSystem{
		SystemBase: engine.NewSystemBase(w),
	}
	s.statUpgraded = s.Res.Status.Ints.Get("sink.surfaces_upgraded")
	s.statOrphaned = s.Res.Status.Ints.Get("sink.links_orphaned")
	return s
}

// Priority returns the system's priority
func (s *UpgradeSystem) Priority() int {
	return parameter.PriorityUpgrade
}

// Update is a no-op; the system only reacts to events
func (s *UpgradeSystem) Update() {}

// EventTypes returns event types handled
func (s *UpgradeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSceneReady,
	}
}

// HandleEvent processes scene-ready events
func (s *UpgradeSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.SceneReadyPayload)
	if !ok {
		return
	}
	s.upgrade(payload.Root)
}

// upgrade rewrites the subtree below root to the sink's derived material
//
// Resolution failures are silent by design: a root without a link is not
// an interactive scene, and a link whose sink died is stale, not broken.
// Only the rewrite itself is observable.
func (s *UpgradeSystem) upgrade(root core.Entity) {
	link, ok := s.World.Components.Link.Get(root)
	if !ok {
		return // Not an interactive scene
	}

	sinkComp, ok := s.World.Components.Sink.Get(link.Sink)
	if !ok {
		// Sink entity destroyed or stripped before the scene arrived
		if link.State == component.LinkPending {
			link.State = component.LinkOrphaned
			s.World.Components.Link.Set(root, link)
			s.statOrphaned.Add(1)
		}
		return
	}

	cb := engine.NewCommandBuffer()
	for _, e := range s.World.Nodes.Descendants(root) {
		if s.World.Components.Surface.Has(e) {
			cb.ReplaceSurface(e, sinkComp.Material)
		}
	}

	// A second pass over an upgraded subtree queues nothing: the generic
	// references were structurally removed on the first pass
	replaced := cb.Apply(s.World)

	if link.State != component.LinkUpgraded {
		link.State = component.LinkUpgraded
		s.World.Components.Link.Set(root, link)
	}

	if replaced > 0 {
		s.statUpgraded.Add(int64(replaced))
	}
	s.World.PushEvent(event.EventSurfacesUpgraded, &event.SurfacesUpgradedPayload{
		Root:     root,
		Sink:     link.Sink,
		Replaced: replaced,
	})
}
