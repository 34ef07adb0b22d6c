package component

import (
	"github.com/lixenwraith/scenesink/material"
)

// SinkComponent marks an entity as the interaction point for a group of
// streamed sub-scenes
//
// Material is the sink's derived material handle, cloned from the shared
// palette at construction and stable for the entity's lifetime. Every
// scene linked to this sink ends up referencing this one handle, which is
// what lets many visually distinct assets share a single material
// instance for synchronized effects.
//
// Construct only through sink.New; the factory guarantees Material is
// populated before any system can observe the entity.
type SinkComponent struct {
	Material material.Handle
}
