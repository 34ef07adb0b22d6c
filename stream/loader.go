package stream

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/material"
	"github.com/lixenwraith/scenesink/parameter"
)

// loadJob tracks one in-flight sub-scene instance
type loadJob struct {
	asset    core.AssetRef
	root     core.Entity
	manifest *Manifest

	// Generic material slot shared by this instance's surfaces, standing
	// in for the asset's own embedded materials
	generic material.Handle

	next    int // Index of the next NodeDef to commit
	spawned map[string]core.Entity
}

// Loader streams sub-scene subtrees into the world
//
// Each Load queues a job; Update commits up to StreamBatchSize nodes per
// job per tick, so a large scene materializes over several ticks the way
// a real asset pipeline would. When a job's final node commits, the
// loader raises EventSceneReady for the root - exactly once. The event is
// consumed at the next dispatch phase, strictly after this tick's
// structural changes are committed.
//
// A job that never finishes (host stops ticking, world cleared) simply
// leaves its link Pending; failure handling belongs to the host.
type Loader struct {
	engine.SystemBase

	mu        sync.Mutex
	nextAsset core.AssetRef
	jobs      []*loadJob

	statNodes  *atomic.Int64
	statScenes *atomic.Int64
}

// NewLoader creates the streaming service
func NewLoader(w *engine.World) *Loader {
	l := &Loader{
		SystemBase: engine.NewSystemBase(w),
		nextAsset:  1,
	}
	l.statNodes = l.Res.Status.Ints.Get("stream.nodes_spawned")
	l.statScenes = l.Res.Status.Ints.Get("stream.scenes_ready")
	return l
}

// Name implements service.Service
func (l *Loader) Name() string {
	return "stream"
}

// Dependencies implements service.Service
func (l *Loader) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (l *Loader) Init(args ...any) error {
	return nil
}

// Start implements service.Service
// The loader has no goroutines of its own; it advances on world ticks
func (l *Loader) Start() error {
	return nil
}

// Stop implements service.Service
// Pending jobs are dropped; their links stay Pending
func (l *Loader) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jobs = nil
	return nil
}

// Priority returns the system's priority
func (l *Loader) Priority() int {
	return parameter.PriorityStream
}

// Load queues streaming of the manifest at path under the given root
// entity. The caller owns the root (and typically attaches a scene link
// to it before the scene becomes ready). Returns the asset ref
// identifying this instance.
func (l *Loader) Load(path string, root core.Entity) (core.AssetRef, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return core.AssetNone, fmt.Errorf("load %s: %w", path, err)
	}
	return l.LoadParsed(m, root)
}

// LoadParsed queues an already-decoded manifest
// Used by tests and the sandbox to stream in-memory scenes. The manifest
// is re-validated: spawnBatch trusts the parent ordering rules, so a
// hand-built manifest that breaks them must be rejected here, not
// silently mis-parented
func (l *Loader) LoadParsed(m *Manifest, root core.Entity) (core.AssetRef, error) {
	if err := m.Validate(); err != nil {
		return core.AssetNone, err
	}

	// One generic entry per instance, standing in for the asset's own
	// material data; replaced handles leave it orphaned in the store
	generic := l.Res.Materials.Add(material.Default())

	l.mu.Lock()
	defer l.mu.Unlock()

	asset := l.nextAsset
	l.nextAsset++

	l.jobs = append(l.jobs, &loadJob{
		asset:    asset,
		root:     root,
		manifest: m,
		generic:  generic,
		spawned:  make(map[string]core.Entity, len(m.Nodes)),
	})
	return asset, nil
}

// Pending returns the number of in-flight jobs
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.jobs)
}

// Update commits one batch of nodes per in-flight job
func (l *Loader) Update() {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := l.jobs[:0]
	for _, job := range l.jobs {
		if job.next == 0 {
			l.World.PushEvent(event.EventSceneSpawned, &event.SceneSpawnedPayload{
				Root:  job.root,
				Asset: job.asset,
			})
		}

		l.spawnBatch(job)

		if job.next < len(job.manifest.Nodes) {
			remaining = append(remaining, job)
			continue
		}

		// Full subtree committed this tick; the ready event is consumed
		// at the next dispatch phase
		l.World.PushEvent(event.EventSceneReady, &event.SceneReadyPayload{
			Root:  job.root,
			Asset: job.asset,
		})
		l.statScenes.Add(1)
	}
	l.jobs = remaining
}

// spawnBatch commits up to StreamBatchSize nodes of the job's manifest
func (l *Loader) spawnBatch(job *loadJob) {
	w := l.World
	end := job.next + parameter.StreamBatchSize
	if end > len(job.manifest.Nodes) {
		end = len(job.manifest.Nodes)
	}

	for ; job.next < end; job.next++ {
		def := job.manifest.Nodes[job.next]

		parent := job.root
		if def.Parent != "" {
			// Validation guarantees parents are defined earlier
			parent = job.spawned[def.Parent]
		}

		e := w.CreateEntity()
		w.Nodes.Set(e, component.NodeComponent{Parent: parent})
		w.Components.Label.Set(e, component.LabelComponent{Name: def.Name})
		if def.Surface {
			w.Components.Surface.Set(e, component.SurfaceComponent{Material: job.generic})
		}

		job.spawned[def.Name] = e
		l.statNodes.Add(1)
	}
}
