package engine

import (
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/material"
	"github.com/lixenwraith/scenesink/status"
)

// Resources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type Resources struct {
	Time      *TimeResource
	Config    *ConfigResource
	Events    *EventQueueResource
	Status    *status.Registry
	Materials *material.Store
	Palette   *material.Palette
}

// GetResources populates Resources from the world's resource store
// Call once during system construction; pointers remain valid for the
// application lifetime
func GetResources(w *World) Resources {
	return Resources{
		Time:      MustGetResource[*TimeResource](w.Resources),
		Config:    MustGetResource[*ConfigResource](w.Resources),
		Events:    MustGetResource[*EventQueueResource](w.Resources),
		Status:    MustGetResource[*status.Registry](w.Resources),
		Materials: MustGetResource[*material.Store](w.Resources),
		Palette:   MustGetResource[*material.Palette](w.Resources),
	}
}

// InstallCoreResources seeds the resource store with the singletons every
// host needs: time, config, event queue, status registry, material store
// and palette registry. Call once before constructing systems.
func InstallCoreResources(w *World, cfg *ConfigResource) {
	if cfg == nil {
		cfg = &ConfigResource{}
	}
	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, cfg)
	AddResource(w.Resources, &EventQueueResource{Queue: event.NewEventQueue()})
	AddResource(w.Resources, status.NewRegistry())
	AddResource(w.Resources, material.NewStore())
	AddResource(w.Resources, material.NewPalette())
}
