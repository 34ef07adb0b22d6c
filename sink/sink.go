// Package sink implements the interaction group subsystem: sink entities
// act as the single interaction point for many streamed sub-scenes, and
// every surface in those scenes is upgraded at load completion to share
// the sink's derived material instance.
//
// Lifecycle:
//  1. Host installs core resources and initializes the palette registry
//  2. sink.New derives a per-sink material from the palette (once, at
//     construction, before the entity is observable)
//  3. stream.Loader spawns a sub-scene subtree and raises EventSceneReady
//  4. UpgradeSystem rewrites the subtree's surfaces to the sink's handle
package sink

import (
	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/engine"
)

// New constructs a fully-initialized sink entity
//
// This factory is the construction hook: it runs synchronously, so no
// system can ever observe a sink whose material is still the sentinel.
// Steps:
//  1. Read the palette registry (panics if uninitialized - that is a
//     startup ordering bug in the host, not a recoverable condition)
//  2. Clone the base material into a fresh store entry
//  3. Record the new handle on the sink component
//
// Each call produces a distinct derived entry; sinks never share a slot
// even when constructed from the same palette snapshot. Re-deriving an
// existing sink entity is not supported.
func New(w *engine.World) core.Entity {
	res := engine.GetResources(w)

	base := res.Palette.Handle()
	baseMat, ok := res.Materials.Get(base)
	if !ok {
		panic("palette handle does not resolve in the material store")
	}

	derived := res.Materials.Add(baseMat.Clone())

	e := w.CreateEntity()
	w.Components.Sink.Set(e, component.SinkComponent{Material: derived})
	return e
}

// Link attaches a pending scene link to a sub-scene root entity
// Many roots may link to the same sink. The link is read-only afterward
// except for its state, which the upgrade dispatcher owns.
func Link(w *engine.World, root, sinkEntity core.Entity, asset core.AssetRef) {
	w.Components.Link.Set(root, component.SceneLinkComponent{
		Sink:  sinkEntity,
		Asset: asset,
		State: component.LinkPending,
	})
}
