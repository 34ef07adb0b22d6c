package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/scenesink/event"
	"github.com/lixenwraith/scenesink/parameter"
	"github.com/lixenwraith/scenesink/status"
)

// TickScheduler advances the world on a fixed tick
// Within a tick the phase order is fixed: time resource update, event
// dispatch via the router, then systems in priority order. All three run
// under the world update lock, so handlers never race systems and no
// system observes a partially dispatched tick.
type TickScheduler struct {
	world   *World
	timeRes *TimeResource
	eqRes   *EventQueueResource

	tickInterval time.Duration
	lastTickTime time.Time

	frameNumber atomic.Int64
	tickCount   atomic.Uint64

	// Event routing
	eventRouter *event.Router[*World]

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks *atomic.Int64
}

// NewTickScheduler creates a scheduler with the given tick interval
// Wires the world's event metadata so PushEvent stamps the current frame
func NewTickScheduler(world *World, tickInterval time.Duration) *TickScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.DefaultTickInterval
	}

	timeRes := MustGetResource[*TimeResource](world.Resources)
	eqRes := MustGetResource[*EventQueueResource](world.Resources)
	statusReg := MustGetResource[*status.Registry](world.Resources)

	ts := &TickScheduler{
		world:        world,
		timeRes:      timeRes,
		eqRes:        eqRes,
		tickInterval: tickInterval,
		lastTickTime: time.Now(),
		eventRouter:  event.NewRouter[*World](eqRes.Queue),
		stopChan:     make(chan struct{}),
		statTicks:    statusReg.Ints.Get("engine.ticks"),
	}

	ts.eventRouter.Register(worldClearHandler{})
	world.SetEventMetadata(eqRes.Queue, &ts.frameNumber)

	return ts
}

// worldClearHandler performs mass entity cleanup when a clear event
// arrives, during the dispatch phase so no system observes a half-empty
// world
type worldClearHandler struct{}

func (worldClearHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventWorldClear}
}

func (worldClearHandler) HandleEvent(w *World, ev event.GameEvent) {
	w.Clear()
}

// RegisterEventHandler adds an event handler to the router
// Must be called before Start
func (ts *TickScheduler) RegisterEventHandler(handler event.Handler[*World]) {
	ts.eventRouter.Register(handler)
}

// RegisterSystemHandlers scans registered systems and auto-registers
// those that also implement the event handler interface
func (ts *TickScheduler) RegisterSystemHandlers() {
	for _, s := range ts.world.Systems() {
		if h, ok := s.(event.Handler[*World]); ok {
			ts.eventRouter.Register(h)
		}
	}
}

// Tick advances the simulation one step
// Exposed so tests and the sandbox can drive the world deterministically
// without the background goroutine
func (ts *TickScheduler) Tick() {
	now := time.Now()
	frame := ts.frameNumber.Add(1)

	ts.world.RunSafe(func() {
		ts.timeRes.Update(now, now.Sub(ts.lastTickTime), frame)
		ts.eventRouter.DispatchAll(ts.world)
		ts.world.UpdateLocked()
	})

	ts.lastTickTime = now
	ts.tickCount.Add(1)
	ts.statTicks.Add(1)
}

// Start launches the background tick loop
func (ts *TickScheduler) Start() {
	if !ts.running.CompareAndSwap(false, true) {
		return
	}

	ts.wg.Add(1)
	go func() {
		defer ts.wg.Done()
		ticker := time.NewTicker(ts.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ts.stopChan:
				return
			case <-ticker.C:
				ts.Tick()
			}
		}
	}()
}

// Stop halts the tick loop; idempotent
func (ts *TickScheduler) Stop() {
	ts.stopOnce.Do(func() {
		close(ts.stopChan)
	})
	ts.wg.Wait()
	ts.running.Store(false)
}

// TickCount returns the number of completed ticks
func (ts *TickScheduler) TickCount() uint64 {
	return ts.tickCount.Load()
}

// Router exposes the event router for diagnostics
func (ts *TickScheduler) Router() *event.Router[*World] {
	return ts.eventRouter
}
