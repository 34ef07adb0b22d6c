package component

import (
	"github.com/lixenwraith/scenesink/core"
)

// LinkState tracks a scene link through the upgrade protocol
type LinkState int

const (
	// LinkPending while the sub-scene is still streaming in
	LinkPending LinkState = iota

	// LinkUpgraded after the dispatcher rewrote the subtree surfaces
	LinkUpgraded

	// LinkOrphaned when the sink was gone at ready time; terminal, inert
	LinkOrphaned
)

// SceneLinkComponent ties a streamed sub-scene root to its owning sink
// Sink is read-only after creation; many links may reference one sink
type SceneLinkComponent struct {
	Sink  core.Entity
	Asset core.AssetRef
	State LinkState
}
