package core

// Entity is a unique identifier for an entity
// IDs are allocated monotonically by the world and never reused
type Entity uint64

// EntityNone is the sentinel for "no entity"
const EntityNone Entity = 0

// AssetRef identifies one streamed sub-scene asset instance
// Each Load call produces a fresh ref, even for the same path
type AssetRef uint64

// AssetNone is the sentinel for "no asset"
const AssetNone AssetRef = 0
