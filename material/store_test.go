package material

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestStoreDistinctHandles(t *testing.T) {
	s := NewStore()

	m := Default()
	h1 := s.Add(m)
	h2 := s.Add(m)

	if h1 == HandleNone || h2 == HandleNone {
		t.Fatalf("expected non-sentinel handles")
	}
	if h1 == h2 {
		t.Errorf("expected distinct handles for identical data")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(42); ok {
		t.Errorf("expected missing handle to not resolve")
	}
	if s.Has(HandleNone) {
		t.Errorf("expected sentinel handle to never resolve")
	}
}

func TestStoreMutateInPlace(t *testing.T) {
	s := NewStore()
	h := s.Add(Default())

	ok := s.Mutate(h, func(m *Material) {
		m.Roughness = 0.9
	})
	if !ok {
		t.Fatalf("expected mutate to find entry")
	}

	got, _ := s.Get(h)
	if got.Roughness != 0.9 {
		t.Errorf("expected mutated roughness 0.9, got %v", got.Roughness)
	}

	if s.Mutate(99, func(m *Material) {}) {
		t.Errorf("expected mutate on missing handle to return false")
	}
}

func TestStoreRangeOrderAndWriteback(t *testing.T) {
	s := NewStore()
	h1 := s.Add(Material{Name: "a"})
	h2 := s.Add(Material{Name: "b"})
	h3 := s.Add(Material{Name: "c"})

	var visited []Handle
	s.Range(func(h Handle, m *Material) {
		visited = append(visited, h)
		m.Metallic = 1
	})

	if len(visited) != 3 {
		t.Fatalf("expected 3 entries visited, got %d", len(visited))
	}
	if visited[0] != h1 || visited[1] != h2 || visited[2] != h3 {
		t.Errorf("expected ascending handle order, got %v", visited)
	}

	for _, h := range []Handle{h1, h2, h3} {
		m, _ := s.Get(h)
		if m.Metallic != 1 {
			t.Errorf("expected Range mutation written back for handle %d", h)
		}
	}
}

func TestMaterialCloneIndependent(t *testing.T) {
	orig := Material{
		Name: "base",
		Base: colorful.Color{R: 0.2, G: 0.4, B: 0.6},
	}

	clone := orig.Clone()
	clone.Base.R = 0.9

	if orig.Base.R != 0.2 {
		t.Errorf("expected clone mutation to not affect original")
	}
	if !orig.AlmostEqual(orig.Clone(), 0.001) {
		t.Errorf("expected fresh clone visually equal to original")
	}
}

func TestMaterialLuminance(t *testing.T) {
	black := Material{Base: colorful.Color{R: 0, G: 0, B: 0}}
	white := Material{Base: colorful.Color{R: 1, G: 1, B: 1}}
	blue := Material{Base: colorful.Color{R: 0, G: 0, B: 1}}

	if black.Luminance() != 0 {
		t.Errorf("expected black luminance 0, got %v", black.Luminance())
	}
	if l := white.Luminance(); l < 0.99 || l > 1.01 {
		t.Errorf("expected white luminance ~1, got %v", l)
	}
	if blue.Luminance() >= white.Luminance() {
		t.Errorf("expected blue darker than white")
	}
}

func TestMaterialWithHighlight(t *testing.T) {
	m := Material{
		Base:     colorful.Color{R: 0, G: 0, B: 1},
		Emissive: colorful.Color{R: 1, G: 1, B: 0},
	}

	unchanged := m.WithHighlight(0)
	if !unchanged.AlmostEqual(m, 0.001) {
		t.Errorf("expected zero-strength highlight to be identity")
	}

	full := m.WithHighlight(1)
	if full.Base.DistanceLab(m.Emissive) > 0.01 {
		t.Errorf("expected full-strength highlight to reach emissive color")
	}

	// Strength outside [0,1] clamps instead of extrapolating
	over := m.WithHighlight(5)
	if !over.AlmostEqual(full, 0.001) {
		t.Errorf("expected over-strength highlight clamped to 1")
	}
}
