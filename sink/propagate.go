package sink

import (
	"sync/atomic"

	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/material"
	"github.com/lixenwraith/scenesink/parameter"
)

// PaletteSystem broadcasts palette data changes into the derived
// material entries, in place
//
// Optional extension, disabled unless ConfigResource.PropagatePalette is
// set. Only entries owned by a live sink are touched; generic stand-in
// entries and orphaned slots keep their data. Identifiers never change:
// each derived entry is overwritten under the store lock, so sinks and
// scene nodes keep their handles and pick up the new data without
// re-resolving anything.
type PaletteSystem struct {
	engine.SystemBase

	statPropagated *atomic.Int64
}

// NewPaletteSystem creates the propagation system
func NewPaletteSystem(w *engine.World) *PaletteSystem {
	s := &PaletteSystem{
		SystemBase: engine.NewSystemBase(w),
	}
	s.statPropagated = s.Res.Status.Ints.Get("sink.palette_propagations")
	return s
}

// Priority returns the system's priority
func (s *PaletteSystem) Priority() int {
	return parameter.PriorityPalette
}

// Update is a no-op; the system only reacts to events
func (s *PaletteSystem) Update() {}

// EventTypes returns event types handled
func (s *PaletteSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaletteChanged,
	}
}

// HandleEvent overwrites every live sink's derived entry with the new
// base data. Non-derived store entries (loader stand-ins, the base
// itself) are not the palette's to rewrite.
func (s *PaletteSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if !s.Res.Config.PropagatePalette {
		return
	}

	base, ok := s.Res.Palette.TryHandle()
	if !ok {
		return // Palette not initialized yet; nothing derives from it
	}

	baseMat, ok := s.Res.Materials.Get(base)
	if !ok {
		return
	}

	count := 0
	for _, e := range w.Components.Sink.All() {
		comp, ok := w.Components.Sink.Get(e)
		if !ok || comp.Material == base {
			continue
		}
		if s.Res.Materials.Mutate(comp.Material, func(m *material.Material) {
			*m = baseMat.Clone()
		}) {
			count++
		}
	}

	if count > 0 {
		s.statPropagated.Add(int64(count))
	}
}
