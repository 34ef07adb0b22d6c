package material

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Material holds the surface data shared by all nodes referencing it
// Value semantics: assignment is a deep copy, there are no reference fields
type Material struct {
	Name      string
	Base      colorful.Color
	Emissive  colorful.Color
	Roughness float32
	Metallic  float32
}

// Default returns the neutral material used when no palette data applies
func Default() Material {
	return Material{
		Name:      "default",
		Base:      colorful.Color{R: 0.5, G: 0.5, B: 0.5},
		Emissive:  colorful.Color{R: 0, G: 0, B: 0},
		Roughness: 0.5,
	}
}

// Clone returns an independent copy of the material
// Spelled out rather than relying on implicit assignment so call sites
// that derive per-sink entries state their intent
func (m Material) Clone() Material {
	return m
}

// WithHighlight returns a copy with the base color blended toward the
// emissive color by strength in [0,1]; used for hover/selection effects
func (m Material) WithHighlight(strength float32) Material {
	s := clamp01(strength)
	out := m
	out.Base = m.Base.BlendLab(m.Emissive, float64(s)).Clamped()
	return out
}

// Luminance returns perceived brightness of the base color in [0,1]
func (m Material) Luminance() float32 {
	r := float32(m.Base.R)
	g := float32(m.Base.G)
	b := float32(m.Base.B)
	return math32.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// AlmostEqual reports whether two materials are visually interchangeable
// Color distance uses Lab space; scalars compare within eps
func (m Material) AlmostEqual(other Material, eps float32) bool {
	if m.Base.DistanceLab(other.Base) > float64(eps) {
		return false
	}
	if m.Emissive.DistanceLab(other.Emissive) > float64(eps) {
		return false
	}
	if math32.Abs(m.Roughness-other.Roughness) > eps {
		return false
	}
	if math32.Abs(m.Metallic-other.Metallic) > eps {
		return false
	}
	return true
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
