package sink

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/material"
)

func paletteChanged(sys *PaletteSystem, w *engine.World) {
	sys.HandleEvent(w, event.GameEvent{
		Type:    event.EventPaletteChanged,
		Payload: &event.PaletteChangedPayload{Path: "palette.toml"},
	})
}

func TestPropagationDisabledByDefault(t *testing.T) {
	w, base := newTestWorld(t)
	res := engine.GetResources(w)
	sys := NewPaletteSystem(w)

	sinkEntity := New(w)
	sinkComp, _ := w.Components.Sink.Get(sinkEntity)

	res.Materials.Mutate(base, func(m *material.Material) {
		m.Base = colorful.Color{R: 1, G: 0, B: 0}
	})
	paletteChanged(sys, w)

	derived, _ := res.Materials.Get(sinkComp.Material)
	if derived.Base.R == 1 {
		t.Errorf("expected derived entry untouched while propagation disabled")
	}
}

func TestPropagationOverwritesDerivedInPlace(t *testing.T) {
	w, base := newTestWorld(t)
	res := engine.GetResources(w)
	res.Config.PropagatePalette = true
	sys := NewPaletteSystem(w)

	s1 := New(w)
	s2 := New(w)
	c1, _ := w.Components.Sink.Get(s1)
	c2, _ := w.Components.Sink.Get(s2)

	res.Materials.Mutate(base, func(m *material.Material) {
		m.Base = colorful.Color{R: 1, G: 0, B: 0}
		m.Roughness = 0.7
	})
	paletteChanged(sys, w)

	baseMat, _ := res.Materials.Get(base)
	for _, h := range []material.Handle{c1.Material, c2.Material} {
		m, ok := res.Materials.Get(h)
		if !ok {
			t.Fatalf("expected handle %d still resolvable after propagation", h)
		}
		if !m.AlmostEqual(baseMat, 0.001) || m.Roughness != 0.7 {
			t.Errorf("expected derived entry %d overwritten with new base data", h)
		}
	}

	// Handles are stable; sinks were not re-pointed
	c1After, _ := w.Components.Sink.Get(s1)
	if c1After.Material != c1.Material {
		t.Errorf("expected sink handle unchanged by propagation")
	}
}

func TestPropagationSkipsNonDerivedEntries(t *testing.T) {
	w, base := newTestWorld(t)
	res := engine.GetResources(w)
	res.Config.PropagatePalette = true
	sys := NewPaletteSystem(w)

	sinkEntity := New(w)
	sinkComp, _ := w.Components.Sink.Get(sinkEntity)

	// Stand-in entry like the ones the loader creates per scene instance
	generic := res.Materials.Add(material.Default())

	res.Materials.Mutate(base, func(m *material.Material) {
		m.Base = colorful.Color{R: 1, G: 0, B: 0}
	})
	paletteChanged(sys, w)

	got, _ := res.Materials.Get(generic)
	if got.Name != "default" || got.Base.R == 1 {
		t.Errorf("expected generic entry untouched by propagation, got %+v", got)
	}

	derived, _ := res.Materials.Get(sinkComp.Material)
	if derived.Base.R != 1 {
		t.Errorf("expected derived entry updated, got %+v", derived)
	}
}

func TestPropagationSkipsOrphanedDerivedEntries(t *testing.T) {
	w, base := newTestWorld(t)
	res := engine.GetResources(w)
	res.Config.PropagatePalette = true
	sys := NewPaletteSystem(w)

	dead := New(w)
	deadComp, _ := w.Components.Sink.Get(dead)
	w.DestroyEntity(dead)

	res.Materials.Mutate(base, func(m *material.Material) {
		m.Base = colorful.Color{R: 1, G: 0, B: 0}
	})
	paletteChanged(sys, w)

	orphan, ok := res.Materials.Get(deadComp.Material)
	if !ok {
		t.Fatalf("expected orphaned entry still in the store")
	}
	if orphan.Base.R == 1 {
		t.Errorf("expected orphaned entry untouched, got %+v", orphan)
	}
}

func TestPropagationLeavesBaseAlone(t *testing.T) {
	w, base := newTestWorld(t)
	res := engine.GetResources(w)
	res.Config.PropagatePalette = true
	sys := NewPaletteSystem(w)

	New(w)

	before, _ := res.Materials.Get(base)
	paletteChanged(sys, w)
	after, _ := res.Materials.Get(base)

	if !after.AlmostEqual(before, 0.001) || after.Name != before.Name {
		t.Errorf("expected base entry not rewritten onto itself")
	}
}
