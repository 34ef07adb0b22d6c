package component

import (
	"github.com/lixenwraith/scenesink/core"
)

// NodeComponent places an entity in a sub-scene hierarchy
// Stored in the engine's Hierarchy store, which maintains the reverse
// children index used for descendant traversal
type NodeComponent struct {
	Parent core.Entity
}

// LabelComponent carries the node name from the scene manifest
// Diagnostic only; the sandbox and tests use it for display and lookup
type LabelComponent struct {
	Name string
}
