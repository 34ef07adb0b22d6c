package event

import (
	"testing"
)

type testContext struct {
	log []string
}

type testHandler struct {
	name  string
	types []EventType
}

func (h *testHandler) HandleEvent(ctx *testContext, ev GameEvent) {
	ctx.log = append(ctx.log, h.name)
}

func (h *testHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*testContext](q)

	r.Register(&testHandler{name: "a", types: []EventType{EventSceneReady}})
	r.Register(&testHandler{name: "b", types: []EventType{EventSceneReady}})

	q.Push(GameEvent{Type: EventSceneReady})

	ctx := &testContext{}
	r.DispatchAll(ctx)

	if len(ctx.log) != 2 {
		t.Fatalf("expected both handlers invoked, got %d", len(ctx.log))
	}
	if ctx.log[0] != "a" || ctx.log[1] != "b" {
		t.Errorf("expected registration order a,b, got %v", ctx.log)
	}
}

func TestRouterUnhandledEventDropped(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*testContext](q)

	r.Register(&testHandler{name: "a", types: []EventType{EventSceneReady}})

	q.Push(GameEvent{Type: EventPaletteChanged})

	ctx := &testContext{}
	r.DispatchAll(ctx)

	if len(ctx.log) != 0 {
		t.Errorf("expected no handler calls for unregistered type, got %v", ctx.log)
	}
}

func TestRouterMultiTypeHandler(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*testContext](q)

	r.Register(&testHandler{name: "multi", types: []EventType{EventSceneReady, EventPaletteChanged}})

	if !r.HasHandlers(EventSceneReady) || !r.HasHandlers(EventPaletteChanged) {
		t.Fatalf("expected handler registered for both types")
	}
	if r.HandlerCount(EventSceneReady) != 1 {
		t.Errorf("expected 1 handler, got %d", r.HandlerCount(EventSceneReady))
	}

	q.Push(GameEvent{Type: EventSceneReady})
	q.Push(GameEvent{Type: EventPaletteChanged})

	ctx := &testContext{}
	r.DispatchAll(ctx)

	if len(ctx.log) != 2 {
		t.Errorf("expected handler invoked for each event, got %v", ctx.log)
	}
}
