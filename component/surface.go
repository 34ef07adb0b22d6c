package component

import (
	"github.com/lixenwraith/scenesink/material"
)

// SurfaceComponent is the generic surface-material reference a node
// carries when its scene streams in; the payload is opaque beyond
// identity. The upgrade dispatcher removes it and attaches a
// SharedSurfaceComponent in its place.
type SurfaceComponent struct {
	Material material.Handle
}

// SharedSurfaceComponent references a sink's derived material
// Presence of this component (instead of SurfaceComponent) is what makes
// the subtree rewrite idempotent: a second pass finds nothing left to
// replace.
type SharedSurfaceComponent struct {
	Material material.Handle
}
