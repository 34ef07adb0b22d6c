package event

import (
	"github.com/lixenwraith/scenesink/core"
)

// SceneSpawnedPayload identifies the job that started committing nodes
type SceneSpawnedPayload struct {
	Root  core.Entity
	Asset core.AssetRef
}

// SceneReadyPayload carries the root entity of a fully materialized
// sub-scene; all descendant nodes exist when this event is consumed
type SceneReadyPayload struct {
	Root  core.Entity
	Asset core.AssetRef
}

// PaletteChangedPayload notes the source of a palette data change
// Path is empty for programmatic changes
type PaletteChangedPayload struct {
	Path string
}

// SurfacesUpgradedPayload reports the outcome of one subtree rewrite
type SurfacesUpgradedPayload struct {
	Root     core.Entity
	Sink     core.Entity
	Replaced int
}
