package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/scenesink/component"
	"github.com/lixenwraith/scenesink/core"
	"github.com/lixenwraith/scenesink/event"
)

type recordingHandler struct {
	calls []event.GameEvent
	seq   *[]string
}

func (h *recordingHandler) HandleEvent(w *World, ev event.GameEvent) {
	h.calls = append(h.calls, ev)
	if h.seq != nil {
		*h.seq = append(*h.seq, "dispatch")
	}
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSceneReady}
}

type phaseSystem struct {
	seq *[]string
}

func (s *phaseSystem) Update()       { *s.seq = append(*s.seq, "update") }
func (s *phaseSystem) Priority() int { return 0 }

func newSchedulerWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld()
	InstallCoreResources(w, nil)
	return w
}

func TestTickDispatchesBeforeSystems(t *testing.T) {
	w := newSchedulerWorld(t)

	var seq []string
	w.AddSystem(&phaseSystem{seq: &seq})

	ts := NewTickScheduler(w, time.Second)
	handler := &recordingHandler{seq: &seq}
	ts.RegisterEventHandler(handler)

	w.PushEvent(event.EventSceneReady, &event.SceneReadyPayload{Root: 1})
	ts.Tick()

	if len(handler.calls) != 1 {
		t.Fatalf("expected 1 dispatched event, got %d", len(handler.calls))
	}
	if len(seq) != 2 || seq[0] != "dispatch" || seq[1] != "update" {
		t.Errorf("expected dispatch phase before update phase, got %v", seq)
	}
}

func TestTickStampsFrameOnEvents(t *testing.T) {
	w := newSchedulerWorld(t)
	ts := NewTickScheduler(w, time.Second)
	handler := &recordingHandler{}
	ts.RegisterEventHandler(handler)

	ts.Tick()
	ts.Tick()
	w.PushEvent(event.EventSceneReady, nil)
	ts.Tick()

	if len(handler.calls) != 1 {
		t.Fatalf("expected 1 event, got %d", len(handler.calls))
	}
	if handler.calls[0].Frame != 2 {
		t.Errorf("expected event stamped with frame 2, got %d", handler.calls[0].Frame)
	}
	if ts.TickCount() != 3 {
		t.Errorf("expected 3 ticks, got %d", ts.TickCount())
	}
}

type handlerSystem struct {
	recordingHandler
}

func (s *handlerSystem) Update()       {}
func (s *handlerSystem) Priority() int { return 0 }

func TestRegisterSystemHandlers(t *testing.T) {
	w := newSchedulerWorld(t)

	hs := &handlerSystem{}
	w.AddSystem(hs)

	ts := NewTickScheduler(w, time.Second)
	ts.RegisterSystemHandlers()

	if !ts.Router().HasHandlers(event.EventSceneReady) {
		t.Fatalf("expected system auto-registered as event handler")
	}

	w.PushEvent(event.EventSceneReady, nil)
	ts.Tick()
	if len(hs.calls) != 1 {
		t.Errorf("expected auto-registered handler to receive event")
	}
}

func TestWorldClearEventEmptiesWorld(t *testing.T) {
	w := newSchedulerWorld(t)
	ts := NewTickScheduler(w, time.Second)

	e := w.CreateEntity()
	w.Components.Label.Set(e, component.LabelComponent{Name: "x"})
	w.Nodes.Set(e, component.NodeComponent{Parent: core.EntityNone})

	w.PushEvent(event.EventWorldClear, nil)
	ts.Tick()

	if w.Alive(e) {
		t.Errorf("expected entity gone after world clear event")
	}
	if w.Components.Label.Count() != 0 || w.Nodes.Count() != 0 {
		t.Errorf("expected all stores emptied")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	w := newSchedulerWorld(t)
	ts := NewTickScheduler(w, time.Millisecond)

	ts.Start()
	time.Sleep(20 * time.Millisecond)
	ts.Stop()

	if ts.TickCount() == 0 {
		t.Errorf("expected background ticks to advance")
	}

	// Stop is idempotent
	ts.Stop()
}
