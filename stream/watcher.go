package stream

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/scenesink/engine"
	"github.com/lixenwraith/scenesink/event"
)

// Watcher observes the palette asset file and emits EventPaletteChanged
// on writes, feeding the optional palette propagation path
//
// The watcher only produces events; whether anything happens depends on
// the host enabling ConfigResource.PropagatePalette and registering the
// palette system.
type Watcher struct {
	world *engine.World
	path  string

	fsw     *fsnotify.Watcher
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	statRunning *atomic.Bool
}

// NewWatcher creates a palette file watcher
func NewWatcher(w *engine.World) *Watcher {
	res := engine.GetResources(w)
	return &Watcher{
		world:       w,
		path:        res.Config.PalettePath,
		statRunning: res.Status.Bools.Get("stream.watcher_running"),
	}
}

// Name implements service.Service
func (pw *Watcher) Name() string {
	return "palette-watcher"
}

// Dependencies implements service.Service
func (pw *Watcher) Dependencies() []string {
	return []string{"stream"}
}

// Init implements service.Service
// args[0]: string - palette file path (overrides ConfigResource.PalettePath)
func (pw *Watcher) Init(args ...any) error {
	if len(args) > 0 {
		if path, ok := args[0].(string); ok && path != "" {
			pw.path = path
		}
	}
	if pw.path == "" {
		return fmt.Errorf("palette watcher: no path configured")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("palette watcher: %w", err)
	}
	if err := fsw.Add(pw.path); err != nil {
		fsw.Close()
		return fmt.Errorf("palette watcher: watch %s: %w", pw.path, err)
	}

	pw.fsw = fsw
	pw.stopCh = make(chan struct{})
	return nil
}

// Start implements service.Service
func (pw *Watcher) Start() error {
	if pw.fsw == nil {
		return fmt.Errorf("palette watcher: not initialized")
	}
	if !pw.running.CompareAndSwap(false, true) {
		return nil
	}
	pw.statRunning.Store(true)

	pw.wg.Add(1)
	go pw.loop()
	return nil
}

// Stop implements service.Service; idempotent
func (pw *Watcher) Stop() error {
	if !pw.running.CompareAndSwap(true, false) {
		return nil
	}
	close(pw.stopCh)
	pw.wg.Wait()
	err := pw.fsw.Close()
	pw.statRunning.Store(false)
	return err
}

// loop forwards file change notifications as engine events
func (pw *Watcher) loop() {
	defer pw.wg.Done()

	for {
		select {
		case <-pw.stopCh:
			return
		case ev, ok := <-pw.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				pw.world.PushEvent(event.EventPaletteChanged, &event.PaletteChangedPayload{
					Path: ev.Name,
				})
			}
		case _, ok := <-pw.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to the subsystem; the palette
			// simply stops receiving live updates
		}
	}
}
